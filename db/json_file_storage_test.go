package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/models"
)

func Test_JSONFileStorage_SaveOverwritesWholeFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	storage := CreateJSONFileStorage(filepath.Join(dir, "library.json"))

	require.NoError(t, storage.Save(ctx, []models.Book{hobbit(), dune(1965)}))
	require.NoError(t, storage.Save(ctx, []models.Book{dune(1966)}))

	books, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Book{dune(1966)}, books)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func Test_JSONFileStorage_SaveIntoMissingDirectoryFails(t *testing.T) {
	storage := CreateJSONFileStorage(filepath.Join(t.TempDir(), "nope", "library.json"))

	err := storage.Save(context.Background(), []models.Book{hobbit()})

	assert.Error(t, err)
}

func Test_JSONFileStorage_ReadsOriginalFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	original := `[
    {
        "Title": "The Hobbit",
        "Author": "J.R.R. Tolkien",
        "Year": 1937,
        "Genre": "Fantasy",
        "Read Status": "Read"
    }
]`
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	books, err := CreateJSONFileStorage(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Book{hobbit()}, books)
}
