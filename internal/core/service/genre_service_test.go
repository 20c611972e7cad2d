package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ladob/catalog-api/internal/core/domain"
)

type stubGenreRepo struct {
	genres []*domain.Genre
}

func newStubGenreRepo() *stubGenreRepo {
	return &stubGenreRepo{}
}

func (r *stubGenreRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, g := range r.genres {
		if g.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubGenreRepo) FindByID(_ context.Context, id string) (*domain.Genre, error) {
	for _, g := range r.genres {
		if g.ID == id {
			clone := *g
			return &clone, nil
		}
	}
	return nil, domain.NewNotFound("Genre not found with id: " + id)
}

func (r *stubGenreRepo) FindAll(_ context.Context) ([]domain.Genre, error) {
	out := make([]domain.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGenreRepo) Save(_ context.Context, genre *domain.Genre) (*domain.Genre, error) {
	saved := *genre
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	for _, g := range r.genres {
		if g.Name == saved.Name && g.ID != saved.ID {
			return nil, domain.NewAlreadyExists("A genre with this name already exists: " + saved.Name)
		}
	}
	for _, g := range r.genres {
		if g.ID == saved.ID {
			g.Name = saved.Name
			return &saved, nil
		}
	}
	clone := saved
	r.genres = append(r.genres, &clone)
	return &saved, nil
}

func (r *stubGenreRepo) Delete(_ context.Context, genre *domain.Genre) error {
	for i, g := range r.genres {
		if g.ID == genre.ID {
			r.genres = append(r.genres[:i], r.genres[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestGenreService_CreateAndGet(t *testing.T) {
	svc := NewGenreService(newStubGenreRepo())

	created, err := svc.CreateGenre(context.Background(), "Rock")
	if err != nil {
		t.Fatalf("CreateGenre returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}

	got, err := svc.GetGenreByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetGenreByID returned error: %v", err)
	}
	if got.Name != "Rock" {
		t.Fatalf("unexpected name: %s", got.Name)
	}
}

func TestGenreService_Create_Duplicate(t *testing.T) {
	svc := NewGenreService(newStubGenreRepo())

	if _, err := svc.CreateGenre(context.Background(), "Rock"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateGenre(context.Background(), "Rock")
	var ae *domain.AlreadyExistsError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
	if ae.Error() != "A genre with this name already exists: Rock" {
		t.Fatalf("unexpected message: %q", ae.Error())
	}
}

func TestGenreService_GetGenres_InsertionOrder(t *testing.T) {
	svc := NewGenreService(newStubGenreRepo())

	for _, name := range []string{"Rock", "Pop"} {
		if _, err := svc.CreateGenre(context.Background(), name); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	genres, err := svc.GetGenres(context.Background())
	if err != nil {
		t.Fatalf("GetGenres returned error: %v", err)
	}
	if len(genres) != 2 || genres[0].Name != "Rock" || genres[1].Name != "Pop" {
		t.Fatalf("unexpected listing: %+v", genres)
	}
}

func TestGenreService_GetGenres_Empty(t *testing.T) {
	svc := NewGenreService(newStubGenreRepo())

	genres, err := svc.GetGenres(context.Background())
	if err != nil {
		t.Fatalf("GetGenres returned error: %v", err)
	}
	if len(genres) != 0 {
		t.Fatalf("expected empty listing, got %+v", genres)
	}
}

func TestGenreService_GetGenreByID_NotFound(t *testing.T) {
	svc := NewGenreService(newStubGenreRepo())
	id := uuid.NewString()

	_, err := svc.GetGenreByID(context.Background(), id)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Error() != "Genre not found with id: "+id {
		t.Fatalf("unexpected message: %q", nf.Error())
	}
}

func TestGenreService_Update(t *testing.T) {
	svc := NewGenreService(newStubGenreRepo())

	created, err := svc.CreateGenre(context.Background(), "Rock")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateGenre(context.Background(), created.ID, "Pop")
	if err != nil {
		t.Fatalf("UpdateGenre returned error: %v", err)
	}
	if updated.ID != created.ID || updated.Name != "Pop" {
		t.Fatalf("unexpected result: %+v", updated)
	}
}

func TestGenreService_Update_UnknownID(t *testing.T) {
	svc := NewGenreService(newStubGenreRepo())

	_, err := svc.UpdateGenre(context.Background(), uuid.NewString(), "Rock")
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGenreService_Update_DuplicateNameAnywhere(t *testing.T) {
	svc := NewGenreService(newStubGenreRepo())

	rock, err := svc.CreateGenre(context.Background(), "Rock")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateGenre(context.Background(), "Pop"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another genre holds the name.
	if _, err := svc.UpdateGenre(context.Background(), rock.ID, "Pop"); err == nil {
		t.Fatalf("expected duplicate-name error")
	}

	// The name check covers the target itself: renaming to the current
	// name is also rejected.
	_, err = svc.UpdateGenre(context.Background(), rock.ID, "Rock")
	var ae *domain.AlreadyExistsError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AlreadyExistsError for own name, got %v", err)
	}
}

func TestGenreService_Delete(t *testing.T) {
	repo := newStubGenreRepo()
	svc := NewGenreService(repo)

	created, err := svc.CreateGenre(context.Background(), "Rock")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteGenre(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteGenre returned error: %v", err)
	}

	// Repeat delete fails with NOT_FOUND.
	err = svc.DeleteGenre(context.Background(), created.ID)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}
