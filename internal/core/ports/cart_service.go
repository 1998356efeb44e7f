package ports

import (
	"context"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

// CartService defines the cart use-cases available to a logged-in user.
// Every operation is scoped to the calling user's own cart.
type CartService interface {
	// GetActiveCart returns the user's newest unordered cart, creating one
	// when none exists.
	GetActiveCart(ctx context.Context, userID int64) (*domain.Cart, error)
	// AddArticle adds quantity of an article to the active cart, merging
	// with an existing line for the same article.
	AddArticle(ctx context.Context, userID, articleID int64, quantity int) (*domain.Cart, error)
	// EditArticle sets the quantity of an existing line. Quantity 0 removes
	// the line.
	EditArticle(ctx context.Context, userID, articleID int64, quantity int) (*domain.Cart, error)
	// MakeOrder freezes the active cart into a pending order.
	MakeOrder(ctx context.Context, userID int64) (*domain.Order, error)
	// ListUserOrders returns the orders made from the user's carts.
	ListUserOrders(ctx context.Context, userID int64) ([]*domain.Order, error)
}
