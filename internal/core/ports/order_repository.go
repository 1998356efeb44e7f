package ports

import (
	"context"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

// OrderListFilter carries query parameters for listing orders.
type OrderListFilter struct {
	Status string // empty = no filter
	Page   int    // 1-based
	Limit  int
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	// FindByCartID returns the order made from the given cart, if any.
	FindByCartID(ctx context.Context, cartID int64) (*domain.Order, error)
	// ListByCartIDs returns the orders referencing any of the given carts.
	ListByCartIDs(ctx context.Context, cartIDs []int64) ([]*domain.Order, error)
	// List returns a page of orders matching filter and the total count.
	List(ctx context.Context, filter OrderListFilter) ([]*domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// OrderEventRepository persists processed order events to the audit trail.
type OrderEventRepository interface {
	InsertEvent(ctx context.Context, event *domain.OrderEvent) error
}
