package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

const (
	defaultOrderLimit = 20
	maxOrderLimit     = 100
)

// OrderService implements the back-office order use-cases.
type OrderService struct {
	orders ports.OrderRepository
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, log: log}
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// ListOrders returns a page of orders with pagination defaults applied.
func (s *OrderService) ListOrders(ctx context.Context, in ports.OrderListInput) (*ports.OrderListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultOrderLimit
	}
	if limit > maxOrderLimit {
		limit = maxOrderLimit
	}

	items, total, err := s.orders.List(ctx, ports.OrderListFilter{
		Status: in.Status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.OrderListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// ChangeStatus applies a status transition, enforcing the order state machine.
func (s *OrderService) ChangeStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("change status: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, status)
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order.Status = status
	s.log.Info().Int64("order_id", id).Str("status", string(status)).Msg("order status changed")
	return order, nil
}
