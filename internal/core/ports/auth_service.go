package ports

import (
	"context"

	"github.com/ladob/catalog-api/internal/core/domain"
)

// RegisterInput carries the validated registration fields.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService implements registration and login.
type AuthService interface {
	// Register creates a USER-role, inactive account. Fails with a
	// domain.AlreadyExistsError when the email is taken.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	// Unknown email and wrong password both fail with
	// domain.ErrBadCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}
