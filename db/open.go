package db

import (
	"context"
	"fmt"
)

const (
	STORAGE_JSON   = "json"
	STORAGE_SQLITE = "sqlite"
)

// OpenStorage builds the backend named by kind.
func OpenStorage(ctx context.Context, kind, jsonPath, sqlitePath string) (Storage, error) {
	switch kind {
	case STORAGE_JSON, "":
		return CreateJSONFileStorage(jsonPath), nil
	case STORAGE_SQLITE:
		return CreateSQLiteStorage(ctx, sqlitePath)
	}
	return nil, fmt.Errorf("unknown storage %q, expected %q or %q", kind, STORAGE_JSON, STORAGE_SQLITE)
}
