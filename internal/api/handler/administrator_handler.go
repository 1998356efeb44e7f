package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// AdministratorHandler exposes administrator account management. All routes
// are administrator-only; password hashing stays in the service layer.
type AdministratorHandler struct {
	admins ports.AdministratorRepository
	hash   func(string) string
}

func NewAdministratorHandler(admins ports.AdministratorRepository, hash func(string) string) *AdministratorHandler {
	return &AdministratorHandler{admins: admins, hash: hash}
}

type addAdministratorRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type editAdministratorRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// List handles GET /api/administrator.
//
// @Summary      List administrators
// @Tags         administrators
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  domain.Administrator
// @Router       /api/administrator [get]
func (h *AdministratorHandler) List(c echo.Context) error {
	admins, err := h.admins.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// Get handles GET /api/administrator/:id.
//
// @Summary      Get an administrator by id
// @Tags         administrators
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Administrator id"
// @Success      200 {object}  domain.Administrator
// @Failure      404 {object}  errorResponse
// @Router       /api/administrator/{id} [get]
func (h *AdministratorHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid administrator id")
	}

	admin, err := h.admins.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// Add handles POST /api/administrator.
//
// @Summary      Create an administrator
// @Tags         administrators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addAdministratorRequest  true  "Administrator details"
// @Success      201   {object}  domain.Administrator
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/administrator [post]
func (h *AdministratorHandler) Add(c echo.Context) error {
	var req addAdministratorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	admin, err := h.admins.Create(c.Request().Context(), &domain.Administrator{
		Username:     req.Username,
		PasswordHash: h.hash(req.Password),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, admin)
}

// Edit handles PATCH /api/administrator/:id to reset the password.
//
// @Summary      Change an administrator's password
// @Tags         administrators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Administrator id"
// @Param        body  body      editAdministratorRequest  true  "New password"
// @Success      200   {object}  domain.Administrator
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/administrator/{id} [patch]
func (h *AdministratorHandler) Edit(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid administrator id")
	}

	var req editAdministratorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.admins.UpdatePassword(c.Request().Context(), id, h.hash(req.Password)); err != nil {
		return err
	}

	admin, err := h.admins.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}
