package ports

import (
	"context"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

// AdministratorRepository defines persistence operations for administrators.
type AdministratorRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Administrator, error)
	FindByID(ctx context.Context, id int64) (*domain.Administrator, error)
	List(ctx context.Context) ([]*domain.Administrator, error)
	Create(ctx context.Context, a *domain.Administrator) (*domain.Administrator, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// UserRepository defines persistence operations for shop users.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}
