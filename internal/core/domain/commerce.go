package domain

import "time"

// Commerce entities: declared in the schema, not yet exposed by the API.

type Address struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	UserID   string `json:"userId" bson:"user_id"`
	Street   string `json:"street" bson:"street"`
	City     string `json:"city" bson:"city"`
	Province string `json:"province" bson:"province"`
	ZipCode  string `json:"zipCode" bson:"zip_code"`
}

type Cart struct {
	ID     string     `json:"id" bson:"_id,omitempty"`
	UserID string     `json:"userId" bson:"user_id"`
	Items  []CartItem `json:"items" bson:"items"`
}

type CartItem struct {
	AlbumID  string `json:"albumId" bson:"album_id"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

type Order struct {
	ID         string      `json:"id" bson:"_id,omitempty"`
	UserID     string      `json:"userId" bson:"user_id"`
	Items      []OrderItem `json:"items" bson:"items"`
	TotalCents int64       `json:"totalCents" bson:"total_cents"`
	PlacedAt   time.Time   `json:"placedAt" bson:"placed_at"`
}

type OrderItem struct {
	AlbumID    string `json:"albumId" bson:"album_id"`
	Quantity   int    `json:"quantity" bson:"quantity"`
	PriceCents int64  `json:"priceCents" bson:"price_cents"`
}
