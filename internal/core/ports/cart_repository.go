package ports

import (
	"context"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

// CartRepository defines persistence operations for carts.
type CartRepository interface {
	Create(ctx context.Context, cart *domain.Cart) error
	FindByID(ctx context.Context, id int64) (*domain.Cart, error)
	// FindNewestByUserID returns the user's most recently created cart.
	FindNewestByUserID(ctx context.Context, userID int64) (*domain.Cart, error)
	// ListByUserID returns all carts the user has ever created.
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Cart, error)
	// UpdateArticles replaces the cart's article lines.
	UpdateArticles(ctx context.Context, cartID int64, articles []domain.CartArticle) error
}
