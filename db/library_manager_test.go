package db

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/codec"
	"bookshelf/models"
)

func hobbit() models.Book {
	return models.Book{Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: 1937, Genre: "Fantasy", ReadStatus: models.Read}
}

func dune(year int) models.Book {
	return models.Book{Title: "Dune", Author: "Frank Herbert", Year: year, Genre: "Science Fiction", ReadStatus: models.Unread}
}

func newTestLibrary(t *testing.T) (*LibraryManager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.json")
	library := NewLibraryManager(CreateJSONFileStorage(path), nil)
	require.NoError(t, library.Load(context.Background()))
	return library, path
}

func reload(t *testing.T, path string) *LibraryManager {
	t.Helper()
	library := NewLibraryManager(CreateJSONFileStorage(path), nil)
	require.NoError(t, library.Load(context.Background()))
	return library
}

func Test_Load_MissingFile_IsEmpty(t *testing.T) {
	library, path := newTestLibrary(t)

	assert.Equal(t, 0, library.Len())
	assert.Empty(t, library.List())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Load should not create the file")
}

func Test_Load_MalformedFile_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Title": "not an array"}`), 0644))

	library := NewLibraryManager(CreateJSONFileStorage(path), nil)
	err := library.Load(context.Background())

	assert.ErrorIs(t, err, models.ErrMalformedLibrary)
}

func Test_Load_EmptyFile_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	err := NewLibraryManager(CreateJSONFileStorage(path), nil).Load(context.Background())

	assert.ErrorIs(t, err, models.ErrMalformedLibrary)
}

func Test_Add_RoundTripsThroughStorage(t *testing.T) {
	ctx := context.Background()
	library, path := newTestLibrary(t)

	book := models.Book{Title: "Piranesi", Author: "Susanna Clarke", Year: 2020, Genre: "", ReadStatus: models.Unread}
	require.NoError(t, library.Add(ctx, book))
	require.NoError(t, library.Save(ctx))

	reloaded := reload(t, path)
	assert.Equal(t, []models.Book{book}, reloaded.List())
}

func Test_Add_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	library, path := newTestLibrary(t)

	require.NoError(t, library.Add(ctx, hobbit()))
	require.NoError(t, library.Add(ctx, dune(1965)))
	require.NoError(t, library.Add(ctx, dune(1966)))

	assert.Equal(t, []string{"The Hobbit", "Dune", "Dune"}, library.Titles())
	assert.Equal(t, library.List(), reload(t, path).List(), "every Add persists immediately")
}

func Test_Add_RejectsMissingTitleOrAuthor(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		book models.Book
	}{
		{"no title", models.Book{Author: "Anon", Year: 2000, ReadStatus: models.Read}},
		{"no author", models.Book{Title: "Untitled", Year: 2000, ReadStatus: models.Read}},
		{"year too large", models.Book{Title: "Later", Author: "Someone", Year: 2101, ReadStatus: models.Read}},
		{"bad status", models.Book{Title: "Maybe", Author: "Someone", Year: 2000, ReadStatus: "Skimmed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			library, path := newTestLibrary(t)

			err := library.Add(ctx, tt.book)

			assert.ErrorIs(t, err, models.ErrInvalidBook)
			assert.Equal(t, 0, library.Len())
			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "rejected Add must not persist")
		})
	}
}

func Test_Remove_DeletesEverySameTitledBook(t *testing.T) {
	ctx := context.Background()
	library, path := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, dune(1965)))
	require.NoError(t, library.Add(ctx, hobbit()))
	require.NoError(t, library.Add(ctx, dune(1984)))

	removed, err := library.Remove(ctx, "Dune")

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []models.Book{hobbit()}, library.List())
	assert.Equal(t, []models.Book{hobbit()}, reload(t, path).List())
}

func Test_Remove_UnknownTitle_IsNoOp(t *testing.T) {
	ctx := context.Background()
	library, _ := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, hobbit()))
	before := library.List()

	removed, err := library.Remove(ctx, "Nonexistent")

	assert.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, before, library.List())
}

func Test_Remove_IsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	library, _ := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, dune(1965)))

	removed, err := library.Remove(ctx, "dune")

	assert.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, library.Len())
}

func Test_Edit_ChangesOnlyFirstMatch(t *testing.T) {
	ctx := context.Background()
	library, path := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, dune(1965)))
	require.NoError(t, library.Add(ctx, dune(1984)))

	require.NoError(t, library.Edit(ctx, "Dune", dune(1966)))

	assert.Equal(t, []models.Book{dune(1966), dune(1984)}, library.List())
	assert.Equal(t, library.List(), reload(t, path).List())
}

func Test_Edit_CanRenameBook(t *testing.T) {
	ctx := context.Background()
	library, _ := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, hobbit()))

	renamed := hobbit()
	renamed.Title = "The Hobbit, or There and Back Again"
	require.NoError(t, library.Edit(ctx, "The Hobbit", renamed))

	_, found := library.Find("The Hobbit")
	assert.False(t, found)
	got, found := library.Find(renamed.Title)
	assert.True(t, found)
	assert.Equal(t, renamed, got)
}

func Test_Edit_UnknownTitle_Fails(t *testing.T) {
	ctx := context.Background()
	library, _ := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, hobbit()))

	err := library.Edit(ctx, "Dune", dune(1966))

	assert.ErrorIs(t, err, models.ErrBookNotFound)
	assert.Equal(t, []models.Book{hobbit()}, library.List())
}

func Test_Edit_InvalidReplacement_Fails(t *testing.T) {
	ctx := context.Background()
	library, _ := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, hobbit()))

	replacement := hobbit()
	replacement.Author = ""
	err := library.Edit(ctx, "The Hobbit", replacement)

	assert.ErrorIs(t, err, models.ErrInvalidBook)
	assert.Equal(t, []models.Book{hobbit()}, library.List())
}

func Test_Search(t *testing.T) {
	ctx := context.Background()
	library, _ := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, hobbit()))
	require.NoError(t, library.Add(ctx, dune(1965)))

	assert.Equal(t, []models.Book{hobbit()}, library.Search("tolkien"))
	assert.Equal(t, []models.Book{dune(1965)}, library.Search("DUN"))
	assert.Equal(t, []models.Book{hobbit(), dune(1965)}, library.Search(""))
	assert.Empty(t, library.Search("asimov"))
	assert.NotNil(t, library.Search("asimov"), "no match is an empty list, not nil")
}

func Test_Search_DoesNotAliasCollection(t *testing.T) {
	ctx := context.Background()
	library, _ := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, hobbit()))

	results := library.Search("")
	results[0].Title = "changed"

	assert.Equal(t, "The Hobbit", library.List()[0].Title)
}

func Test_Statistics(t *testing.T) {
	ctx := context.Background()
	library, _ := newTestLibrary(t)

	assert.Equal(t, models.Statistics{Total: 0, PercentRead: 0.0}, library.Statistics())

	for _, status := range []models.ReadStatus{models.Read, models.Unread, models.Read} {
		b := hobbit()
		b.ReadStatus = status
		require.NoError(t, library.Add(ctx, b))
	}

	stats := library.Statistics()
	assert.Equal(t, 3, stats.Total)
	assert.InDelta(t, 66.67, stats.PercentRead, 0.01)
}

func Test_Import_ReplacesCollectionAndPersists(t *testing.T) {
	ctx := context.Background()
	library, path := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, hobbit()))

	doc := `[
    {"Title": "Dune", "Author": "Frank Herbert", "Year": 1965, "Genre": "Science Fiction", "Read Status": "Unread"},
    {"Title": "Emma", "Author": "Jane Austen", "Year": 1815, "Genre": "", "Read Status": "Read"}
]`
	require.NoError(t, library.Import(ctx, strings.NewReader(doc)))

	assert.Equal(t, []string{"Dune", "Emma"}, library.Titles())
	assert.Equal(t, library.List(), reload(t, path).List())
}

func Test_Import_ThenExport_IsDeeplyEqual(t *testing.T) {
	ctx := context.Background()
	library, _ := newTestLibrary(t)

	doc := `[{"Title":"The Hobbit","Author":"J.R.R. Tolkien","Year":1937,"Genre":"Fantasy","Read Status":"Read"},
	{"Title":"Dune","Author":"Frank Herbert","Year":1965,"Genre":"Science Fiction","Read Status":"Unread"}]`
	require.NoError(t, library.Import(ctx, strings.NewReader(doc)))

	exported, err := library.Export()
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(exported))
}

func Test_Import_Malformed_LeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()

	tests := map[string]string{
		"not json":        `this is not json`,
		"object":          `{"Title": "Dune"}`,
		"unknown key":     `[{"Title":"Dune","Author":"Frank Herbert","Year":1965,"Genre":"","Read Status":"Read","Rating":5}]`,
		"bad status":      `[{"Title":"Dune","Author":"Frank Herbert","Year":1965,"Genre":"","Read Status":"Half"}]`,
		"missing author":  `[{"Title":"Dune","Year":1965,"Genre":"","Read Status":"Read"}]`,
		"year as string":  `[{"Title":"Dune","Author":"Frank Herbert","Year":"1965","Genre":"","Read Status":"Read"}]`,
		"second bad item": `[{"Title":"Dune","Author":"Frank Herbert","Year":1965,"Genre":"","Read Status":"Read"}, 7]`,
		"missing year":    `[{"Title":"Dune","Author":"Frank Herbert","Genre":"SF","Read Status":"Read"}]`,
		"null year":       `[{"Title":"Dune","Author":"Frank Herbert","Year":null,"Genre":"SF","Read Status":"Read"}]`,
		"null genre":      `[{"Title":"Dune","Author":"Frank Herbert","Year":1965,"Genre":null,"Read Status":"Read"}]`,
		"lowercase keys":  `[{"title":"Dune","author":"Frank Herbert","year":1965,"genre":"SF","read status":"Read"}]`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			library, path := newTestLibrary(t)
			require.NoError(t, library.Add(ctx, hobbit()))

			err := library.Import(ctx, strings.NewReader(doc))

			assert.ErrorIs(t, err, models.ErrMalformedLibrary)
			assert.Equal(t, []models.Book{hobbit()}, library.List())
			assert.Equal(t, []models.Book{hobbit()}, reload(t, path).List())
		})
	}
}

func Test_Export_IsIndentedDocument(t *testing.T) {
	ctx := context.Background()
	library, _ := newTestLibrary(t)
	require.NoError(t, library.Add(ctx, hobbit()))

	exported, err := library.Export()

	require.NoError(t, err)
	assert.Contains(t, string(exported), "\n        \"Read Status\": \"Read\"")
	books, err := codec.DecodeBytes(exported)
	require.NoError(t, err)
	assert.Equal(t, []models.Book{hobbit()}, books)
}

func Test_Export_EmptyLibrary(t *testing.T) {
	library, _ := newTestLibrary(t)

	exported, err := library.Export()

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(exported))
}

func Test_Save_WritesEmptyArrayForEmptyLibrary(t *testing.T) {
	library, path := newTestLibrary(t)

	require.NoError(t, library.Save(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
