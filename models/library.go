package models

import (
	"context"
	"io"
)

// Library is the record store behind every shell action and API route.
type Library interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Add(ctx context.Context, book Book) error
	Remove(ctx context.Context, title string) (int, error)
	Edit(ctx context.Context, title string, book Book) error
	Search(query string) []Book
	Statistics() Statistics
	Import(ctx context.Context, r io.Reader) error
	Export() ([]byte, error)
	List() []Book
	Titles() []string
	Find(title string) (Book, bool)
	Len() int
}
