package ports

import (
	"context"
	"time"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

// OrderListInput carries the parameters for the admin order listing.
type OrderListInput struct {
	Status string // optional: filter by order status
	Page   int    // 1-based
	Limit  int    // capped by the service
}

// OrderListResult is a page of orders.
type OrderListResult struct {
	Items      []*domain.Order
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// OrderService defines the back-office order use-cases.
type OrderService interface {
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, in OrderListInput) (*OrderListResult, error)
	// ChangeStatus applies a status transition, enforcing the order state
	// machine.
	ChangeStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
}

// OrderEventInput is the DTO passed from the transport layer to OrderEventService.
type OrderEventInput struct {
	OrderID   int64
	Status    string
	Timestamp time.Time
	Source    string
}

// OrderEventService processes incoming order status events.
type OrderEventService interface {
	Process(ctx context.Context, event OrderEventInput) error
}
