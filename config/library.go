package config

import (
	"context"
	"fmt"
	"log/slog"

	"bookshelf/db"
)

// OpenLibrary builds the configured storage and loads the library from it.
func (c *Config) OpenLibrary(ctx context.Context, logger *slog.Logger) (*db.LibraryManager, error) {
	storage, err := db.OpenStorage(ctx, c.Storage, c.File, c.SQLitePath)
	if err != nil {
		return nil, err
	}

	library := db.NewLibraryManager(storage, logger)
	if err := library.Load(ctx); err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to load library: %w", err)
	}

	logger.Info("library opened", "storage", storage.String(), "books", library.Len())
	return library, nil
}
