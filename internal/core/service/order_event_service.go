package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/webshop-io/shop-api/internal/api/metrics"
	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, orderID int64, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, orderID int64, status string, ts time.Time) error
}

type orderEventService struct {
	orders ports.OrderRepository
	events ports.OrderEventRepository
	dedup  DedupChecker
	log    zerolog.Logger
}

// NewOrderEventService returns an OrderEventService implementation.
func NewOrderEventService(
	orders ports.OrderRepository,
	events ports.OrderEventRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.OrderEventService {
	return &orderEventService{orders: orders, events: events, dedup: dedup, log: log}
}

// Process validates, deduplicates, and persists a single order status event.
func (s *orderEventService) Process(ctx context.Context, in ports.OrderEventInput) error {
	newStatus := domain.OrderStatus(in.Status)

	// 1. Idempotency check: silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.OrderID, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Int64("order_id", in.OrderID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.OrderEventsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Int64("order_id", in.OrderID).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}
	metrics.OrderEventsDedupTotal.WithLabelValues("miss").Inc()

	// 2. Find the order.
	order, err := s.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		metrics.OrderEventsErrorsTotal.WithLabelValues("order_not_found").Inc()
		return fmt.Errorf("process event: %w", err)
	}

	// 3. Validate state machine transition.
	if !order.Status.CanTransitionTo(newStatus) {
		metrics.OrderEventsErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("process event: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, newStatus)
	}

	// 4. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.OrderID, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Int64("order_id", in.OrderID).Msg("failed to set dedup key")
	}

	// 5. Apply the new status.
	if err := s.orders.UpdateStatus(ctx, in.OrderID, newStatus); err != nil {
		metrics.OrderEventsErrorsTotal.WithLabelValues("update_failed").Inc()
		return fmt.Errorf("process event: update status: %w", err)
	}

	// 6. Insert into audit trail (non-fatal on failure).
	auditEvent := &domain.OrderEvent{
		OrderID:   in.OrderID,
		Status:    newStatus,
		Timestamp: in.Timestamp,
		Source:    in.Source,
	}
	if err := s.events.InsertEvent(ctx, auditEvent); err != nil {
		s.log.Warn().Err(err).Int64("order_id", in.OrderID).Msg("failed to insert audit event")
	}

	metrics.OrderEventsProcessedTotal.WithLabelValues(in.Status, in.Source).Inc()
	s.log.Info().
		Int64("order_id", in.OrderID).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("order event processed")

	return nil
}
