package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 75
)

// CatalogService implements article and category use-cases.
type CatalogService struct {
	articles   ports.ArticleRepository
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewCatalogService(
	articles ports.ArticleRepository,
	categories ports.CategoryRepository,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{articles: articles, categories: categories, log: log}
}

// CreateArticle creates a catalog article under an existing category.
func (s *CatalogService) CreateArticle(ctx context.Context, in ports.CreateArticleInput) (*domain.Article, error) {
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	status := domain.ArticleStatus(in.Status)
	if status == "" {
		status = domain.ArticleAvailable
	}

	article := &domain.Article{
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		Excerpt:     in.Excerpt,
		Description: in.Description,
		Status:      status,
		IsPromoted:  in.IsPromoted,
		Price:       in.Price,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.articles.Create(ctx, article); err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to create article")
		return nil, err
	}

	s.log.Info().Int64("article_id", article.ID).Str("name", article.Name).Msg("article created")
	return article, nil
}

// EditArticle replaces the mutable fields of an existing article.
func (s *CatalogService) EditArticle(ctx context.Context, id int64, in ports.EditArticleInput) (*domain.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != article.CategoryID {
		if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
			return nil, err
		}
	}

	article.Name = in.Name
	article.CategoryID = in.CategoryID
	article.Excerpt = in.Excerpt
	article.Description = in.Description
	article.Status = domain.ArticleStatus(in.Status)
	article.IsPromoted = in.IsPromoted
	article.Price = in.Price

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *CatalogService) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return s.articles.FindByID(ctx, id)
}

// SearchArticles runs the catalog search with pagination defaults applied.
func (s *CatalogService) SearchArticles(ctx context.Context, in ports.ArticleSearchInput) (*ports.ArticleSearchResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	items, total, err := s.articles.Search(ctx, ports.ArticleSearchFilter{
		CategoryID:     in.CategoryID,
		Keywords:       in.Keywords,
		PriceMin:       in.PriceMin,
		PriceMax:       in.PriceMax,
		OrderBy:        in.OrderBy,
		OrderDirection: in.OrderDirection,
		Page:           page,
		Limit:          limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ArticleSearchResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// CreateCategory creates a category; a non-zero parent must exist.
func (s *CatalogService) CreateCategory(ctx context.Context, in ports.CreateCategoryInput) (*domain.Category, error) {
	if in.ParentCategoryID != 0 {
		if _, err := s.categories.FindByID(ctx, in.ParentCategoryID); err != nil {
			return nil, err
		}
	}

	category := &domain.Category{
		Name:             in.Name,
		ImagePath:        in.ImagePath,
		ParentCategoryID: in.ParentCategoryID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info().Int64("category_id", category.ID).Str("name", category.Name).Msg("category created")
	return category, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}
