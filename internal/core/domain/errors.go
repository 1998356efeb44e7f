package domain

import "errors"

// Sentinel errors mapped to HTTP statuses by the API error handler.
var (
	ErrAdministratorNotFound = errors.New("administrator not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserExists            = errors.New("user already exists")
	ErrArticleNotFound       = errors.New("article not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCartNotFound          = errors.New("cart not found")
	ErrCartEmpty             = errors.New("cart is empty")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidTransition     = errors.New("invalid order status transition")
	ErrForbidden             = errors.New("access forbidden")
)

// Stable client-facing error codes, namespaced per failure family:
// -3xxx login, -6xxx registration.
const (
	CodeActorNotFound      = -3001
	CodeBadPassword        = -3002
	CodeRegistrationFailed = -6001
)

// CodedError is a domain-level failure delivered to the client as
// structured data (status/code/message envelope), not as an HTTP error.
type CodedError struct {
	Code    int
	Message string
}

func (e *CodedError) Error() string { return e.Message }

func NewCodedError(code int, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}
