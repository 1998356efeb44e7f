package ports

import (
	"context"
	"time"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

// LoginInput carries the submitted credential plus the request context the
// issued token is bound to.
type LoginInput struct {
	Identity  string // username for administrators, email for users
	Password  string
	IP        string
	UserAgent string
}

// LoginInfo is returned to the caller on a successful login. The token is
// the entire session artifact; nothing is stored server-side.
type LoginInfo struct {
	ID       int64  `json:"id"`
	Identity string `json:"identity"`
	Token    string `json:"token"`
}

// RegisterUserInput carries the fields required to create a user account.
type RegisterUserInput struct {
	Email         string
	Password      string
	Forename      string
	Surname       string
	PhoneNumber   string
	PostalAddress string
}

// AuthService implements the login flows and user registration.
// Login failures are reported as *domain.CodedError values.
type AuthService interface {
	LoginAdministrator(ctx context.Context, in LoginInput) (*LoginInfo, error)
	LoginUser(ctx context.Context, in LoginInput) (*LoginInfo, error)
	RegisterUser(ctx context.Context, in RegisterUserInput) (*domain.User, error)
}

// TokenIssuer mints a signed bearer token bound to the issuing request.
type TokenIssuer interface {
	Issue(role string, id int64, identity, ip, ua string, now time.Time) (string, error)
}

// TokenVerifier parses an inbound token and checks its signature. Claim
// validation (expiry, binding) is the admission gate's job, not the
// verifier's.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// AccountDirectory answers whether the actor a token references still
// exists. Lookup failures must be treated as non-existence by callers.
type AccountDirectory interface {
	Exists(ctx context.Context, role string, id int64) (bool, error)
}
