package service

import (
	"context"
	"errors"

	"github.com/ladob/catalog-api/internal/core/domain"
	"github.com/ladob/catalog-api/internal/core/ports"
)

// GenreService implements CRUD over the genre taxonomy with name-uniqueness
// and existence guarantees.
type GenreService struct {
	genres ports.GenreRepository
}

func NewGenreService(genres ports.GenreRepository) *GenreService {
	return &GenreService{genres: genres}
}

func (s *GenreService) GetGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.genres.FindAll(ctx)
}

func (s *GenreService) GetGenreByID(ctx context.Context, id string) (*domain.Genre, error) {
	return s.genres.FindByID(ctx, id)
}

func (s *GenreService) CreateGenre(ctx context.Context, name string) (*domain.Genre, error) {
	exists, err := s.genres.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicateName(name)
	}

	created, err := s.genres.Save(ctx, &domain.Genre{Name: name})
	if err != nil {
		// Concurrent creators may both pass the advisory check; the
		// store's unique index is the final authority.
		var ae *domain.AlreadyExistsError
		if errors.As(err, &ae) {
			return nil, duplicateName(name)
		}
		return nil, err
	}

	return created, nil
}

// UpdateGenre rejects the new name if any genre already carries it, the
// target included. Renaming a genre to its current name is therefore an
// error rather than a no-op.
func (s *GenreService) UpdateGenre(ctx context.Context, id, name string) (*domain.Genre, error) {
	exists, err := s.genres.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicateName(name)
	}

	genre, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	genre.Name = name
	updated, err := s.genres.Save(ctx, genre)
	if err != nil {
		var ae *domain.AlreadyExistsError
		if errors.As(err, &ae) {
			return nil, duplicateName(name)
		}
		return nil, err
	}

	return updated, nil
}

func (s *GenreService) DeleteGenre(ctx context.Context, id string) error {
	genre, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.genres.Delete(ctx, genre); err != nil {
		return err
	}

	return nil
}

func duplicateName(name string) error {
	return domain.NewAlreadyExists("A genre with this name already exists: " + name)
}
