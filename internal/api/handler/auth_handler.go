package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop-io/shop-api/internal/api/metrics"
	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// AuthHandler exposes the login and registration endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type administratorLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userLoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userRegisterRequest struct {
	Email         string `json:"email"          validate:"required,email"`
	Password      string `json:"password"       validate:"required,min=6"`
	Forename      string `json:"forename"       validate:"required"`
	Surname       string `json:"surname"        validate:"required"`
	PhoneNumber   string `json:"phone_number"   validate:"required"`
	PostalAddress string `json:"postal_address" validate:"required"`
}

// AdministratorLogin authenticates an administrator by username.
//
// @Summary      Administrator login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      administratorLoginRequest  true  "Login credentials"
// @Success      200   {object}  ports.LoginInfo
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/administrator/login [post]
func (h *AuthHandler) AdministratorLogin(c echo.Context) error {
	var req administratorLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	info, err := h.authService.LoginAdministrator(c.Request().Context(), ports.LoginInput{
		Identity:  req.Username,
		Password:  req.Password,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return h.loginFailure(c, "administrator", err)
	}

	metrics.LoginsTotal.WithLabelValues("administrator", "success").Inc()
	return c.JSON(http.StatusOK, info)
}

// UserLogin authenticates a user by email.
//
// @Summary      User login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      userLoginRequest  true  "Login credentials"
// @Success      200   {object}  ports.LoginInfo
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/user/login [post]
func (h *AuthHandler) UserLogin(c echo.Context) error {
	var req userLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	info, err := h.authService.LoginUser(c.Request().Context(), ports.LoginInput{
		Identity:  req.Email,
		Password:  req.Password,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return h.loginFailure(c, "user", err)
	}

	metrics.LoginsTotal.WithLabelValues("user", "success").Inc()
	return c.JSON(http.StatusOK, info)
}

// UserRegister creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      userRegisterRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/user/register [post]
func (h *AuthHandler) UserRegister(c echo.Context) error {
	var req userRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.RegisterUser(c.Request().Context(), ports.RegisterUserInput{
		Email:         req.Email,
		Password:      req.Password,
		Forename:      req.Forename,
		Surname:       req.Surname,
		PhoneNumber:   req.PhoneNumber,
		PostalAddress: req.PostalAddress,
	})
	if err != nil {
		var coded *domain.CodedError
		if errors.As(err, &coded) {
			return c.JSON(http.StatusOK, apiResponse{Status: "error", Code: coded.Code, Message: coded.Message})
		}
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// loginFailure renders a coded login failure as the 200-with-envelope
// contract and lets everything else bubble to the error handler.
func (h *AuthHandler) loginFailure(c echo.Context, kind string, err error) error {
	var coded *domain.CodedError
	if errors.As(err, &coded) {
		result := "not_found"
		if coded.Code == domain.CodeBadPassword {
			result = "bad_password"
		}
		metrics.LoginsTotal.WithLabelValues(kind, result).Inc()
		return c.JSON(http.StatusOK, apiResponse{Status: "error", Code: coded.Code, Message: coded.Message})
	}
	metrics.LoginsTotal.WithLabelValues(kind, "error").Inc()
	return err
}
