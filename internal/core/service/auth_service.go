package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// AuthService implements the two symmetric login flows and user
// registration. Login failures surface as *domain.CodedError values so the
// transport layer can render them as structured data.
type AuthService struct {
	admins ports.AdministratorRepository
	users  ports.UserRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(
	admins ports.AdministratorRepository,
	users ports.UserRepository,
	tokens ports.TokenIssuer,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{admins: admins, users: users, tokens: tokens, log: log}
}

// LoginAdministrator authenticates an administrator by username and issues
// a token bound to the request's ip and user-agent.
func (s *AuthService) LoginAdministrator(ctx context.Context, in ports.LoginInput) (*ports.LoginInfo, error) {
	admin, err := s.admins.FindByUsername(ctx, in.Identity)
	if err != nil {
		if errors.Is(err, domain.ErrAdministratorNotFound) {
			return nil, domain.NewCodedError(domain.CodeActorNotFound, "No administrator found")
		}
		return nil, err
	}

	if !VerifyPassword(in.Password, admin.PasswordHash) {
		return nil, domain.NewCodedError(domain.CodeBadPassword, "Administrator password is not correct")
	}

	token, err := s.tokens.Issue(domain.RoleAdministrator, admin.ID, admin.Username, in.IP, in.UserAgent, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("administrator_id", admin.ID).Str("ip", in.IP).Msg("administrator logged in")

	return &ports.LoginInfo{ID: admin.ID, Identity: admin.Username, Token: token}, nil
}

// LoginUser authenticates a user by email and issues a token bound to the
// request's ip and user-agent.
func (s *AuthService) LoginUser(ctx context.Context, in ports.LoginInput) (*ports.LoginInfo, error) {
	user, err := s.users.FindByEmail(ctx, in.Identity)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.NewCodedError(domain.CodeActorNotFound, "No user found")
		}
		return nil, err
	}

	if !VerifyPassword(in.Password, user.PasswordHash) {
		return nil, domain.NewCodedError(domain.CodeBadPassword, "User password is not correct")
	}

	token, err := s.tokens.Issue(domain.RoleUser, user.ID, user.Email, in.IP, in.UserAgent, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("ip", in.IP).Msg("user logged in")

	return &ports.LoginInfo{ID: user.ID, Identity: user.Email, Token: token}, nil
}

// RegisterUser creates a user account with the compatibility password
// scheme applied once.
func (s *AuthService) RegisterUser(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	user := &domain.User{
		Email:         in.Email,
		PasswordHash:  HashPassword(in.Password),
		Forename:      in.Forename,
		Surname:       in.Surname,
		PhoneNumber:   in.PhoneNumber,
		PostalAddress: in.PostalAddress,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.NewCodedError(domain.CodeRegistrationFailed, "A user account with this email already exists")
		}
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}
