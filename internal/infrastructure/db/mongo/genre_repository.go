package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ladob/catalog-api/internal/core/domain"
)

const genreCollection = "genres"

type GenreRepository struct {
	coll *mongo.Collection
}

func NewGenreRepository(db *mongo.Database) *GenreRepository {
	return &GenreRepository{coll: db.Collection(genreCollection)}
}

type genreDoc struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *GenreRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"name": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count genres: %w", err)
	}
	return n > 0, nil
}

func (r *GenreRepository) FindByID(ctx context.Context, id string) (*domain.Genre, error) {
	var doc genreDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NewNotFound("Genre not found with id: " + id)
		}
		return nil, fmt.Errorf("find genre: %w", err)
	}
	return &domain.Genre{ID: doc.ID, Name: doc.Name}, nil
}

// FindAll returns genres ordered by creation time, i.e. insertion order.
func (r *GenreRepository) FindAll(ctx context.Context) ([]domain.Genre, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer cur.Close(ctx)

	genres := make([]domain.Genre, 0)
	for cur.Next(ctx) {
		var doc genreDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode genre: %w", err)
		}
		genres = append(genres, domain.Genre{ID: doc.ID, Name: doc.Name})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres: %w", err)
	}
	return genres, nil
}

func (r *GenreRepository) Save(ctx context.Context, genre *domain.Genre) (*domain.Genre, error) {
	saved := *genre
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	// created_at is written once and preserved on rename so that listing
	// order stays stable.
	update := bson.M{
		"$set":         bson.M{"name": saved.Name},
		"$setOnInsert": bson.M{"created_at": time.Now().UnixNano()},
	}

	_, err := r.coll.UpdateByID(ctx, saved.ID, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.NewAlreadyExists("A genre with this name already exists: " + saved.Name)
		}
		return nil, fmt.Errorf("save genre: %w", err)
	}

	return &saved, nil
}

func (r *GenreRepository) Delete(ctx context.Context, genre *domain.Genre) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": genre.ID}); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	return nil
}
