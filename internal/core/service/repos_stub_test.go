package service

import (
	"context"
	"time"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// In-memory repositories shared by the catalog, cart and order service tests.

type memArticleRepo struct {
	articles map[int64]*domain.Article
	nextID   int64
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{articles: make(map[int64]*domain.Article)}
}

func (r *memArticleRepo) Create(_ context.Context, a *domain.Article) error {
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = time.Now().UTC()
	clone := *a
	r.articles[a.ID] = &clone
	return nil
}

func (r *memArticleRepo) Update(_ context.Context, a *domain.Article) error {
	if _, ok := r.articles[a.ID]; !ok {
		return domain.ErrArticleNotFound
	}
	clone := *a
	r.articles[a.ID] = &clone
	return nil
}

func (r *memArticleRepo) FindByID(_ context.Context, id int64) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *memArticleRepo) Search(_ context.Context, filter ports.ArticleSearchFilter) ([]*domain.Article, int64, error) {
	var out []*domain.Article
	for _, a := range r.articles {
		if filter.CategoryID != 0 && a.CategoryID != filter.CategoryID {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type memCategoryRepo struct {
	categories map[int64]*domain.Category
	nextID     int64
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[int64]*domain.Category)}
}

func (r *memCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *memCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

type memCartRepo struct {
	carts  map[int64]*domain.Cart
	nextID int64
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[int64]*domain.Cart)}
}

func (r *memCartRepo) Create(_ context.Context, cart *domain.Cart) error {
	r.nextID++
	cart.ID = r.nextID
	clone := *cart
	clone.Articles = append([]domain.CartArticle(nil), cart.Articles...)
	r.carts[cart.ID] = &clone
	return nil
}

func (r *memCartRepo) FindByID(_ context.Context, id int64) (*domain.Cart, error) {
	cart, ok := r.carts[id]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return cloneCart(cart), nil
}

func (r *memCartRepo) FindNewestByUserID(_ context.Context, userID int64) (*domain.Cart, error) {
	var newest *domain.Cart
	for _, cart := range r.carts {
		if cart.UserID != userID {
			continue
		}
		if newest == nil || cart.ID > newest.ID {
			newest = cart
		}
	}
	if newest == nil {
		return nil, domain.ErrCartNotFound
	}
	return cloneCart(newest), nil
}

func (r *memCartRepo) ListByUserID(_ context.Context, userID int64) ([]*domain.Cart, error) {
	var out []*domain.Cart
	for _, cart := range r.carts {
		if cart.UserID == userID {
			out = append(out, cloneCart(cart))
		}
	}
	return out, nil
}

func (r *memCartRepo) UpdateArticles(_ context.Context, cartID int64, articles []domain.CartArticle) error {
	cart, ok := r.carts[cartID]
	if !ok {
		return domain.ErrCartNotFound
	}
	cart.Articles = append([]domain.CartArticle(nil), articles...)
	return nil
}

func cloneCart(cart *domain.Cart) *domain.Cart {
	clone := *cart
	clone.Articles = append([]domain.CartArticle(nil), cart.Articles...)
	return &clone
}

type memOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[int64]*domain.Order)}
}

func (r *memOrderRepo) Create(_ context.Context, o *domain.Order) error {
	r.nextID++
	o.ID = r.nextID
	clone := *o
	r.orders[o.ID] = &clone
	return nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *memOrderRepo) FindByCartID(_ context.Context, cartID int64) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.CartID == cartID {
			clone := *o
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *memOrderRepo) ListByCartIDs(_ context.Context, cartIDs []int64) ([]*domain.Order, error) {
	ids := make(map[int64]struct{}, len(cartIDs))
	for _, id := range cartIDs {
		ids[id] = struct{}{}
	}
	var out []*domain.Order
	for _, o := range r.orders {
		if _, ok := ids[o.CartID]; ok {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memOrderRepo) List(_ context.Context, filter ports.OrderListFilter) ([]*domain.Order, int64, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		clone := *o
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

type memOrderEventRepo struct {
	events []*domain.OrderEvent
}

func (r *memOrderEventRepo) InsertEvent(_ context.Context, event *domain.OrderEvent) error {
	clone := *event
	r.events = append(r.events, &clone)
	return nil
}
