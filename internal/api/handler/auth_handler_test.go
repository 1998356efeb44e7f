package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

type stubAuthService struct {
	loginAdmin func(ports.LoginInput) (*ports.LoginInfo, error)
	loginUser  func(ports.LoginInput) (*ports.LoginInfo, error)
	register   func(ports.RegisterUserInput) (*domain.User, error)
}

func (s *stubAuthService) LoginAdministrator(_ context.Context, in ports.LoginInput) (*ports.LoginInfo, error) {
	return s.loginAdmin(in)
}

func (s *stubAuthService) LoginUser(_ context.Context, in ports.LoginInput) (*ports.LoginInfo, error) {
	return s.loginUser(in)
}

func (s *stubAuthService) RegisterUser(_ context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	return s.register(in)
}

func newAuthRequest(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAdministratorLogin_Success(t *testing.T) {
	svc := &stubAuthService{
		loginAdmin: func(in ports.LoginInput) (*ports.LoginInfo, error) {
			if in.Identity != "admin1" || in.Password != "secret123" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.LoginInfo{ID: 1, Identity: "admin1", Token: "signed-token"}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthRequest(t, "/auth/administrator/login", `{"username":"admin1","password":"secret123"}`)
	if err := h.AdministratorLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var info ports.LoginInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if info.Token != "signed-token" || info.Identity != "admin1" {
		t.Fatalf("unexpected response: %+v", info)
	}
}

func TestAdministratorLogin_NotFoundEnvelope(t *testing.T) {
	svc := &stubAuthService{
		loginAdmin: func(ports.LoginInput) (*ports.LoginInfo, error) {
			return nil, domain.NewCodedError(domain.CodeActorNotFound, "No administrator found")
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthRequest(t, "/auth/administrator/login", `{"username":"ghost","password":"x"}`)
	if err := h.AdministratorLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Coded failures travel inside a 200 envelope.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "error" || resp.Code != domain.CodeActorNotFound {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestAdministratorLogin_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthRequest(t, "/auth/administrator/login", `{"username":"admin1"}`)
	err := h.AdministratorLogin(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", he.Code)
	}
}

func TestUserLogin_BadPasswordEnvelope(t *testing.T) {
	svc := &stubAuthService{
		loginUser: func(ports.LoginInput) (*ports.LoginInfo, error) {
			return nil, domain.NewCodedError(domain.CodeBadPassword, "User password is not correct")
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthRequest(t, "/auth/user/login", `{"email":"alice@example.com","password":"wrong"}`)
	if err := h.UserLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != domain.CodeBadPassword {
		t.Fatalf("expected code %d, got %d", domain.CodeBadPassword, resp.Code)
	}
}

func TestUserLogin_InvalidEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthRequest(t, "/auth/user/login", `{"email":"not-an-email","password":"x"}`)
	err := h.UserLogin(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", he.Code)
	}
}

func TestUserRegister_Success(t *testing.T) {
	svc := &stubAuthService{
		register: func(in ports.RegisterUserInput) (*domain.User, error) {
			return &domain.User{ID: 5, Email: in.Email, Forename: in.Forename}, nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"bob@example.com","password":"pass123456","forename":"Bob","surname":"Jones","phone_number":"+381112223344","postal_address":"1 Main St"}`
	c, rec := newAuthRequest(t, "/auth/user/register", body)
	if err := h.UserRegister(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.ID != 5 || user.Email != "bob@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserRegister_DuplicateEnvelope(t *testing.T) {
	svc := &stubAuthService{
		register: func(ports.RegisterUserInput) (*domain.User, error) {
			return nil, domain.NewCodedError(domain.CodeRegistrationFailed, "A user account with this email already exists")
		},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"bob@example.com","password":"pass123456","forename":"Bob","surname":"Jones","phone_number":"+381112223344","postal_address":"1 Main St"}`
	c, rec := newAuthRequest(t, "/auth/user/register", body)
	if err := h.UserRegister(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "error" || resp.Code != domain.CodeRegistrationFailed {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}
