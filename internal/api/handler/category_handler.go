package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/webshop-io/shop-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for catalog categories.
type CategoryHandler struct {
	catalog ports.CatalogService
}

func NewCategoryHandler(catalog ports.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

type categoryRequest struct {
	Name             string `json:"name"               validate:"required"`
	ImagePath        string `json:"image_path"`
	ParentCategoryID int64  `json:"parent_category_id" validate:"omitempty,gt=0"`
}

// Create handles POST /api/category (administrator only).
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.catalog.CreateCategory(c.Request().Context(), ports.CreateCategoryInput{
		Name:             req.Name,
		ImagePath:        req.ImagePath,
		ParentCategoryID: req.ParentCategoryID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, category)
}

// Get handles GET /api/category/:id.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id  path      int  true  "Category id"
// @Success      200 {object}  domain.Category
// @Failure      404 {object}  errorResponse
// @Router       /api/category/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	category, err := h.catalog.GetCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// List handles GET /api/category.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200 {array}  domain.Category
// @Router       /api/category [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}
