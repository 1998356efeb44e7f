package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop-io/shop-api/internal/core/ports"
)

// CartHandler handles the logged-in user's cart operations. The acting
// user always comes from the verified claims, never from the payload.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type addToCartRequest struct {
	ArticleID int64 `json:"article_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"   validate:"required,gt=0"`
}

type editCartRequest struct {
	ArticleID int64 `json:"article_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"   validate:"gte=0"`
}

// Get handles GET /api/user/cart (user only).
//
// @Summary      Get the active cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object}  domain.Cart
// @Failure      401 {object}  errorResponse
// @Failure      403 {object}  errorResponse
// @Router       /api/user/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	cart, err := h.carts.GetActiveCart(c.Request().Context(), claims.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// AddArticle handles POST /api/user/cart/addArticle (user only).
//
// @Summary      Add an article to the active cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addToCartRequest  true  "Article and quantity"
// @Success      200   {object}  domain.Cart
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/user/cart/addArticle [post]
func (h *CartHandler) AddArticle(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	cart, err := h.carts.AddArticle(c.Request().Context(), claims.ID, req.ArticleID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// EditArticle handles PATCH /api/user/cart (user only). Quantity 0 removes
// the article from the cart.
//
// @Summary      Change the quantity of a cart line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      editCartRequest  true  "Article and new quantity"
// @Success      200   {object}  domain.Cart
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/user/cart [patch]
func (h *CartHandler) EditArticle(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req editCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	cart, err := h.carts.EditArticle(c.Request().Context(), claims.ID, req.ArticleID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// MakeOrder handles POST /api/user/cart/makeOrder (user only).
//
// @Summary      Turn the active cart into an order
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object}  domain.Order
// @Failure      401 {object}  errorResponse
// @Failure      422 {object}  errorResponse
// @Router       /api/user/cart/makeOrder [post]
func (h *CartHandler) MakeOrder(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	order, err := h.carts.MakeOrder(c.Request().Context(), claims.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /api/user/cart/orders (user only).
//
// @Summary      List the user's own orders
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  domain.Order
// @Failure      401 {object}  errorResponse
// @Router       /api/user/cart/orders [get]
func (h *CartHandler) ListOrders(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	orders, err := h.carts.ListUserOrders(c.Request().Context(), claims.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
