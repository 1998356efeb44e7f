package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

type stubDedup struct {
	seen    map[string]bool
	failing bool
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) dedupKey(orderID int64, status string, ts time.Time) string {
	return fmt.Sprintf("%d:%s:%d", orderID, status, ts.Unix())
}

func (d *stubDedup) IsDuplicate(_ context.Context, orderID int64, status string, ts time.Time) (bool, error) {
	if d.failing {
		return false, errors.New("redis down")
	}
	return d.seen[d.dedupKey(orderID, status, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, orderID int64, status string, ts time.Time) error {
	if d.failing {
		return errors.New("redis down")
	}
	d.seen[d.dedupKey(orderID, status, ts)] = true
	return nil
}

func newTestEventService(orders *memOrderRepo, events *memOrderEventRepo, dedup DedupChecker) ports.OrderEventService {
	return NewOrderEventService(orders, events, dedup, zerolog.Nop())
}

func TestOrderEventService_Process_AppliesTransition(t *testing.T) {
	orders := newMemOrderRepo()
	events := &memOrderEventRepo{}
	o := seedOrder(t, orders, domain.OrderPending)
	svc := newTestEventService(orders, events, newStubDedup())

	in := ports.OrderEventInput{OrderID: o.ID, Status: "accepted", Timestamp: time.Now(), Source: "warehouse"}
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	updated, err := orders.FindByID(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("find order: %v", err)
	}
	if updated.Status != domain.OrderAccepted {
		t.Fatalf("status not applied, got %s", updated.Status)
	}
	if len(events.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(events.events))
	}
}

func TestOrderEventService_Process_DuplicateSkipped(t *testing.T) {
	orders := newMemOrderRepo()
	events := &memOrderEventRepo{}
	o := seedOrder(t, orders, domain.OrderPending)
	svc := newTestEventService(orders, events, newStubDedup())

	in := ports.OrderEventInput{OrderID: o.ID, Status: "accepted", Timestamp: time.Now(), Source: "warehouse"}
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("first Process returned error: %v", err)
	}
	// Same event again: must be a silent no-op, not an invalid transition.
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("duplicate Process returned error: %v", err)
	}
	if len(events.events) != 1 {
		t.Fatalf("duplicate event reached the audit trail")
	}
}

func TestOrderEventService_Process_InvalidTransition(t *testing.T) {
	orders := newMemOrderRepo()
	events := &memOrderEventRepo{}
	o := seedOrder(t, orders, domain.OrderPending)
	svc := newTestEventService(orders, events, newStubDedup())

	in := ports.OrderEventInput{OrderID: o.ID, Status: "shipped", Timestamp: time.Now(), Source: "warehouse"}
	if err := svc.Process(context.Background(), in); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	unchanged, _ := orders.FindByID(context.Background(), o.ID)
	if unchanged.Status != domain.OrderPending {
		t.Fatalf("invalid transition mutated the order: %s", unchanged.Status)
	}
}

func TestOrderEventService_Process_UnknownOrder(t *testing.T) {
	svc := newTestEventService(newMemOrderRepo(), &memOrderEventRepo{}, newStubDedup())

	in := ports.OrderEventInput{OrderID: 999, Status: "accepted", Timestamp: time.Now(), Source: "warehouse"}
	if err := svc.Process(context.Background(), in); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderEventService_Process_DedupFailureDoesNotBlock(t *testing.T) {
	orders := newMemOrderRepo()
	o := seedOrder(t, orders, domain.OrderPending)
	dedup := newStubDedup()
	dedup.failing = true
	svc := newTestEventService(orders, &memOrderEventRepo{}, dedup)

	in := ports.OrderEventInput{OrderID: o.ID, Status: "accepted", Timestamp: time.Now(), Source: "warehouse"}
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("Process should survive a dedup outage, got %v", err)
	}

	updated, _ := orders.FindByID(context.Background(), o.ID)
	if updated.Status != domain.OrderAccepted {
		t.Fatalf("status not applied during dedup outage, got %s", updated.Status)
	}
}
