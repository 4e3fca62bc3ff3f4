package db

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"bookshelf/codec"
	"bookshelf/models"
)

var _ models.Library = (*LibraryManager)(nil)

// LibraryManager owns the in-memory collection and writes all of it back to
// its Storage after every change. Methods are safe to call from several
// request goroutines; each one runs to completion under a single lock.
type LibraryManager struct {
	storage Storage
	logger  *slog.Logger

	mu    sync.Mutex
	books []models.Book
}

func NewLibraryManager(storage Storage, logger *slog.Logger) *LibraryManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &LibraryManager{
		storage: storage,
		logger:  logger.With("storage", storage.String()),
		books:   []models.Book{},
	}
}

// Load replaces memory with the stored collection. A missing file is an empty
// library; a malformed one is an error and leaves memory untouched.
func (library *LibraryManager) Load(ctx context.Context) error {
	books, err := library.storage.Load(ctx)
	if err != nil {
		return err
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	library.books = books
	library.logger.Debug("library loaded", "books", len(books))
	return nil
}

func (library *LibraryManager) Save(ctx context.Context) error {
	library.mu.Lock()
	defer library.mu.Unlock()

	return library.persist(ctx)
}

// persist must be called with mu held.
func (library *LibraryManager) persist(ctx context.Context) error {
	if err := library.storage.Save(ctx, library.books); err != nil {
		library.logger.Error("saving library failed", "error", err)
		return fmt.Errorf("save library: %w", err)
	}
	library.logger.Debug("library saved", "books", len(library.books))
	return nil
}

func (library *LibraryManager) Add(ctx context.Context, book models.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	library.books = append(library.books, book)
	return library.persist(ctx)
}

// Remove deletes every book titled exactly title and reports how many went.
// No match is not an error.
func (library *LibraryManager) Remove(ctx context.Context, title string) (int, error) {
	library.mu.Lock()
	defer library.mu.Unlock()

	kept := make([]models.Book, 0, len(library.books))
	for _, b := range library.books {
		if b.Title != title {
			kept = append(kept, b)
		}
	}
	removed := len(library.books) - len(kept)
	library.books = kept

	return removed, library.persist(ctx)
}

// Edit overwrites the first book titled exactly title with book.
func (library *LibraryManager) Edit(ctx context.Context, title string, book models.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	i := library.indexOf(title)
	if i < 0 {
		return fmt.Errorf("%w: %q", models.ErrBookNotFound, title)
	}
	library.books[i] = book

	return library.persist(ctx)
}

// Search matches query case-insensitively against title or author.
// The empty query matches everything.
func (library *LibraryManager) Search(query string) []models.Book {
	library.mu.Lock()
	defer library.mu.Unlock()

	q := strings.ToLower(query)
	results := []models.Book{}
	for _, b := range library.books {
		if strings.Contains(strings.ToLower(b.Title), q) || strings.Contains(strings.ToLower(b.Author), q) {
			results = append(results, b)
		}
	}
	return results
}

func (library *LibraryManager) Statistics() models.Statistics {
	library.mu.Lock()
	defer library.mu.Unlock()

	return models.ComputeStatistics(library.books)
}

// Import swaps in the whole decoded document and persists it. Nothing changes
// when the document fails to decode.
func (library *LibraryManager) Import(ctx context.Context, r io.Reader) error {
	books, err := codec.Decode(r)
	if err != nil {
		return err
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	library.books = books
	library.logger.Info("library imported", "books", len(books))
	return library.persist(ctx)
}

func (library *LibraryManager) Export() ([]byte, error) {
	library.mu.Lock()
	defer library.mu.Unlock()

	return codec.Encode(library.books)
}

func (library *LibraryManager) List() []models.Book {
	library.mu.Lock()
	defer library.mu.Unlock()

	books := make([]models.Book, len(library.books))
	copy(books, library.books)
	return books
}

func (library *LibraryManager) Titles() []string {
	library.mu.Lock()
	defer library.mu.Unlock()

	titles := make([]string, len(library.books))
	for i, b := range library.books {
		titles[i] = b.Title
	}
	return titles
}

// Find returns the first book titled exactly title.
func (library *LibraryManager) Find(title string) (models.Book, bool) {
	library.mu.Lock()
	defer library.mu.Unlock()

	i := library.indexOf(title)
	if i < 0 {
		return models.Book{}, false
	}
	return library.books[i], true
}

func (library *LibraryManager) Len() int {
	library.mu.Lock()
	defer library.mu.Unlock()

	return len(library.books)
}

func (library *LibraryManager) Close() error {
	return library.storage.Close()
}

func (library *LibraryManager) indexOf(title string) int {
	for i, b := range library.books {
		if b.Title == title {
			return i
		}
	}
	return -1
}
