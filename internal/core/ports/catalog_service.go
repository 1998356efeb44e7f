package ports

import (
	"context"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

// CreateArticleInput carries all data needed to create a catalog article.
type CreateArticleInput struct {
	Name        string
	CategoryID  int64
	Excerpt     string
	Description string
	Status      string
	IsPromoted  bool
	Price       float64
}

// EditArticleInput replaces the mutable fields of an article.
type EditArticleInput struct {
	Name        string
	CategoryID  int64
	Excerpt     string
	Description string
	Status      string
	IsPromoted  bool
	Price       float64
}

// ArticleSearchInput carries all query parameters for the search endpoint.
type ArticleSearchInput struct {
	CategoryID     int64
	Keywords       string
	PriceMin       float64 // 0 = unset
	PriceMax       float64 // 0 = unset
	OrderBy        string  // "name" or "price"
	OrderDirection string  // "asc" or "desc"
	Page           int     // 1-based
	Limit          int     // capped by the service
}

// ArticleSearchResult is a page of matching articles.
type ArticleSearchResult struct {
	Items      []*domain.Article
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name             string
	ImagePath        string
	ParentCategoryID int64
}

// CatalogService defines use-case operations for articles and categories.
type CatalogService interface {
	CreateArticle(ctx context.Context, in CreateArticleInput) (*domain.Article, error)
	EditArticle(ctx context.Context, id int64, in EditArticleInput) (*domain.Article, error)
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	SearchArticles(ctx context.Context, in ArticleSearchInput) (*ArticleSearchResult, error)

	CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}
