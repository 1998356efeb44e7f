package service

import (
	"context"
	"errors"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// AccountDirectory resolves token claims back to live accounts. A token
// stays cryptographically valid until expiry, so the admission gate asks
// the directory whether the actor still exists on every request.
type AccountDirectory struct {
	admins ports.AdministratorRepository
	users  ports.UserRepository
}

func NewAccountDirectory(admins ports.AdministratorRepository, users ports.UserRepository) *AccountDirectory {
	return &AccountDirectory{admins: admins, users: users}
}

// Exists reports whether the actor referenced by (role, id) is still
// present. Unknown roles do not exist.
func (d *AccountDirectory) Exists(ctx context.Context, role string, id int64) (bool, error) {
	switch role {
	case domain.RoleAdministrator:
		_, err := d.admins.FindByID(ctx, id)
		if errors.Is(err, domain.ErrAdministratorNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	case domain.RoleUser:
		_, err := d.users.FindByID(ctx, id)
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, nil
	}
}
