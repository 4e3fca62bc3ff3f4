package db

import (
	"context"

	"bookshelf/models"
)

// Storage is the durable mirror of a library. Save always receives the whole
// collection and replaces whatever was stored before.
type Storage interface {
	// Load returns an empty, non-nil slice when nothing has been stored yet.
	Load(ctx context.Context) ([]models.Book, error)
	Save(ctx context.Context, books []models.Book) error
	Close() error
	String() string
}
