package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bookshelf/codec"
	"bookshelf/models"
)

var _ Storage = (*JSONFileStorage)(nil)

// JSONFileStorage keeps the library as one JSON document on disk.
type JSONFileStorage struct {
	Path string
}

func CreateJSONFileStorage(path string) *JSONFileStorage {
	return &JSONFileStorage{Path: path}
}

func (storage *JSONFileStorage) Load(_ context.Context) ([]models.Book, error) {
	data, err := os.ReadFile(storage.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Book{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", storage.Path, err)
	}

	books, err := codec.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", storage.Path, err)
	}
	return books, nil
}

// Save writes to a temp file next to the target and renames it over the
// previous document, so a failed write leaves the old file intact.
func (storage *JSONFileStorage) Save(_ context.Context, books []models.Book) error {
	data, err := codec.Encode(books)
	if err != nil {
		return err
	}

	dir, name := filepath.Split(storage.Path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", storage.Path, err)
	}
	tmpPath := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", storage.Path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", storage.Path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", storage.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", storage.Path, err)
	}

	if err := os.Rename(tmpPath, storage.Path); err != nil {
		return fmt.Errorf("save %s: %w", storage.Path, err)
	}
	renamed = true
	return nil
}

func (storage *JSONFileStorage) Close() error {
	return nil
}

func (storage *JSONFileStorage) String() string {
	return "json:" + storage.Path
}
