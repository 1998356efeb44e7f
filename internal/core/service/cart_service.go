package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/webshop-io/shop-api/internal/api/metrics"
	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// CartService implements the per-user cart use-cases. Every operation is
// scoped to the calling user; a user can never reach another user's cart.
type CartService struct {
	carts    ports.CartRepository
	orders   ports.OrderRepository
	articles ports.ArticleRepository
	log      zerolog.Logger
}

func NewCartService(
	carts ports.CartRepository,
	orders ports.OrderRepository,
	articles ports.ArticleRepository,
	log zerolog.Logger,
) *CartService {
	return &CartService{carts: carts, orders: orders, articles: articles, log: log}
}

// GetActiveCart returns the user's newest cart that no order references,
// creating a fresh one when necessary.
func (s *CartService) GetActiveCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	newest, err := s.carts.FindNewestByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return s.createCart(ctx, userID)
		}
		return nil, err
	}

	// A cart already turned into an order is frozen; start a new one.
	if _, err := s.orders.FindByCartID(ctx, newest.ID); err == nil {
		return s.createCart(ctx, userID)
	} else if !errors.Is(err, domain.ErrOrderNotFound) {
		return nil, err
	}

	return newest, nil
}

func (s *CartService) createCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	cart := &domain.Cart{
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Articles:  []domain.CartArticle{},
	}
	if err := s.carts.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddArticle adds quantity of an article to the active cart, merging with
// an existing line for the same article.
func (s *CartService) AddArticle(ctx context.Context, userID, articleID int64, quantity int) (*domain.Cart, error) {
	if _, err := s.articles.FindByID(ctx, articleID); err != nil {
		return nil, err
	}

	cart, err := s.GetActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Articles {
		if cart.Articles[i].ArticleID == articleID {
			cart.Articles[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Articles = append(cart.Articles, domain.CartArticle{ArticleID: articleID, Quantity: quantity})
	}

	if err := s.carts.UpdateArticles(ctx, cart.ID, cart.Articles); err != nil {
		return nil, err
	}
	return cart, nil
}

// EditArticle sets the quantity of an existing cart line; quantity 0
// removes the line.
func (s *CartService) EditArticle(ctx context.Context, userID, articleID int64, quantity int) (*domain.Cart, error) {
	cart, err := s.GetActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range cart.Articles {
		if cart.Articles[i].ArticleID == articleID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrArticleNotFound
	}

	if quantity == 0 {
		cart.Articles = append(cart.Articles[:idx], cart.Articles[idx+1:]...)
	} else {
		cart.Articles[idx].Quantity = quantity
	}

	if err := s.carts.UpdateArticles(ctx, cart.ID, cart.Articles); err != nil {
		return nil, err
	}
	return cart, nil
}

// MakeOrder freezes the active cart into a pending order.
func (s *CartService) MakeOrder(ctx context.Context, userID int64) (*domain.Order, error) {
	cart, err := s.GetActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Articles) == 0 {
		return nil, domain.ErrCartEmpty
	}

	order := &domain.Order{
		CartID:    cart.ID,
		CreatedAt: time.Now().UTC(),
		Status:    domain.OrderPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Int64("cart_id", cart.ID).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().Int64("order_id", order.ID).Int64("user_id", userID).Msg("order created")
	return order, nil
}

// ListUserOrders returns the orders made from any of the user's carts.
func (s *CartService) ListUserOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	carts, err := s.carts.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return []*domain.Order{}, nil
	}

	ids := make([]int64, 0, len(carts))
	for _, c := range carts {
		ids = append(ids, c.ID)
	}
	return s.orders.ListByCartIDs(ctx, ids)
}
