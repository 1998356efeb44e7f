package ports

import (
	"context"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

// ArticleSearchFilter is the repository-level view of a search query.
type ArticleSearchFilter struct {
	CategoryID     int64
	Keywords       string
	PriceMin       float64
	PriceMax       float64
	OrderBy        string
	OrderDirection string
	Page           int
	Limit          int
}

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) error
	Update(ctx context.Context, a *domain.Article) error
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	// Search returns a page of articles matching filter and the total count.
	Search(ctx context.Context, filter ArticleSearchFilter) ([]*domain.Article, int64, error)
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}
