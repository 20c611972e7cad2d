package service

import (
	"context"
	"errors"

	"github.com/ladob/catalog-api/internal/core/domain"
	"github.com/ladob/catalog-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a new account. Role and active flag are system-set and
// never taken from client input.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewAlreadyExists("User already exists with email: " + in.Email)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Active:       false,
	}

	created, err := s.users.Save(ctx, user)
	if err != nil {
		// Concurrent registrations may both pass the existence check;
		// the store's unique index is the final authority.
		var ae *domain.AlreadyExistsError
		if errors.As(err, &ae) {
			return nil, domain.NewAlreadyExists("User already exists with email: " + in.Email)
		}
		return nil, err
	}

	return created, nil
}

// Login does not distinguish an unknown email from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return "", domain.ErrBadCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrBadCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	return token, nil
}
