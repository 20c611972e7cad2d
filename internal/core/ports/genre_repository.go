package ports

import (
	"context"

	"github.com/ladob/catalog-api/internal/core/domain"
)

// GenreRepository defines the persistence contract for genres.
type GenreRepository interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	// FindByID returns the genre or a domain.NotFoundError.
	FindByID(ctx context.Context, id string) (*domain.Genre, error)
	// FindAll returns every genre in insertion order.
	FindAll(ctx context.Context) ([]domain.Genre, error)
	// Save upserts the genre, assigning an ID when absent. A uniqueness
	// violation on name surfaces as a domain.AlreadyExistsError.
	Save(ctx context.Context, genre *domain.Genre) (*domain.Genre, error)
	Delete(ctx context.Context, genre *domain.Genre) error
}
