package ports

import (
	"context"

	"github.com/ladob/catalog-api/internal/core/domain"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// ExistsByEmail reports whether a user with the email is already stored.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// FindByEmail returns the user or a domain.NotFoundError.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Save upserts the user, assigning an ID when absent. A uniqueness
	// violation on email surfaces as a domain.AlreadyExistsError.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	// DeleteAll removes every user. Test support only.
	DeleteAll(ctx context.Context) error
}
