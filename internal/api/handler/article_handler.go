package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// ArticleHandler handles HTTP requests for catalog articles.
type ArticleHandler struct {
	catalog ports.CatalogService
}

func NewArticleHandler(catalog ports.CatalogService) *ArticleHandler {
	return &ArticleHandler{catalog: catalog}
}

type articleRequest struct {
	Name        string  `json:"name"        validate:"required"`
	CategoryID  int64   `json:"category_id" validate:"required,gt=0"`
	Excerpt     string  `json:"excerpt"     validate:"required"`
	Description string  `json:"description" validate:"required"`
	Status      string  `json:"status"      validate:"omitempty,oneof=available visible hidden"`
	IsPromoted  bool    `json:"is_promoted"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

type articleSearchRequest struct {
	CategoryID     int64   `json:"category_id"     validate:"required,gt=0"`
	Keywords       string  `json:"keywords"        validate:"omitempty,max=128"`
	PriceMin       float64 `json:"price_min"       validate:"omitempty,gte=0"`
	PriceMax       float64 `json:"price_max"       validate:"omitempty,gte=0"`
	OrderBy        string  `json:"order_by"        validate:"omitempty,oneof=name price"`
	OrderDirection string  `json:"order_direction" validate:"omitempty,oneof=asc desc"`
	Page           int     `json:"page"            validate:"omitempty,gt=0"`
	ItemsPerPage   int     `json:"items_per_page"  validate:"omitempty,oneof=5 10 25 50 75"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// Create handles POST /api/article (administrator only).
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      articleRequest  true  "Article details"
// @Success      201   {object}  domain.Article
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/article [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	article, err := h.catalog.CreateArticle(c.Request().Context(), ports.CreateArticleInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Excerpt:     req.Excerpt,
		Description: req.Description,
		Status:      req.Status,
		IsPromoted:  req.IsPromoted,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, article)
}

// Edit handles PATCH /api/article/:id (administrator only).
//
// @Summary      Edit an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Article id"
// @Param        body  body      articleRequest  true  "Article details"
// @Success      200   {object}  domain.Article
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/article/{id} [patch]
func (h *ArticleHandler) Edit(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}

	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	article, err := h.catalog.EditArticle(c.Request().Context(), id, ports.EditArticleInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Excerpt:     req.Excerpt,
		Description: req.Description,
		Status:      req.Status,
		IsPromoted:  req.IsPromoted,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, article)
}

// Get handles GET /api/article/:id.
//
// @Summary      Get an article by id
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Article id"
// @Success      200 {object}  domain.Article
// @Failure      404 {object}  errorResponse
// @Router       /api/article/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}

	article, err := h.catalog.GetArticle(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

type searchArticlesResponse struct {
	Data       []*domain.Article  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Search handles POST /api/article/search (administrator and user).
//
// @Summary      Search articles
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      articleSearchRequest  true  "Search filters"
// @Success      200   {object}  searchArticlesResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/article/search [post]
func (h *ArticleHandler) Search(c echo.Context) error {
	var req articleSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.catalog.SearchArticles(c.Request().Context(), ports.ArticleSearchInput{
		CategoryID:     req.CategoryID,
		Keywords:       req.Keywords,
		PriceMin:       req.PriceMin,
		PriceMax:       req.PriceMax,
		OrderBy:        req.OrderBy,
		OrderDirection: req.OrderDirection,
		Page:           req.Page,
		Limit:          req.ItemsPerPage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchArticlesResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}
