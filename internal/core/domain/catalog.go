package domain

import "time"

// Catalog entities below are part of the persisted schema but have no
// behaviors yet; no service or handler operates on them.

type Artist struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

type RecordLabel struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

type Album struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	ArtistID    string    `json:"artistId" bson:"artist_id"`
	GenreID     string    `json:"genreId" bson:"genre_id"`
	LabelID     string    `json:"labelId" bson:"label_id,omitempty"`
	ReleaseDate time.Time `json:"releaseDate" bson:"release_date"`
	PriceCents  int64     `json:"priceCents" bson:"price_cents"`
}

type Song struct {
	ID       string        `json:"id" bson:"_id,omitempty"`
	AlbumID  string        `json:"albumId" bson:"album_id"`
	Title    string        `json:"title" bson:"title"`
	Duration time.Duration `json:"duration" bson:"duration"`
	Track    int           `json:"track" bson:"track"`
}
