package ports

import (
	"context"

	"github.com/ladob/catalog-api/internal/core/domain"
)

// GenreService implements the genre taxonomy operations.
type GenreService interface {
	GetGenres(ctx context.Context) ([]domain.Genre, error)
	GetGenreByID(ctx context.Context, id string) (*domain.Genre, error)
	CreateGenre(ctx context.Context, name string) (*domain.Genre, error)
	UpdateGenre(ctx context.Context, id, name string) (*domain.Genre, error)
	DeleteGenre(ctx context.Context, id string) error
}
