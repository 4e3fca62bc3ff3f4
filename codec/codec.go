// Package codec reads and writes the library document: a JSON array of book
// records, the same shape on disk, on import and on export.
package codec

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"

	"bookshelf/models"
)

const (
	MIME_TYPE = "application/json"
	FILE_NAME = "library.json"
)

var (
	strict = jsoniter.Config{
		EscapeHTML:            false,
		DisallowUnknownFields: true,
		CaseSensitive:         true,
	}.Froze()

	recordKeys = []string{"Title", "Author", "Year", "Genre", "Read Status"}

	prettyOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "    ", SortKeys: false}
)

// Encode renders books as an indented JSON array. A nil slice encodes as [].
func Encode(books []models.Book) ([]byte, error) {
	if books == nil {
		books = []models.Book{}
	}
	compact, err := strict.Marshal(books)
	if err != nil {
		return nil, fmt.Errorf("encode library: %w", err)
	}
	return pretty.PrettyOptions(compact, prettyOptions), nil
}

// Decode parses a whole library document. Every record must carry exactly
// the five known keys, none of them null. Anything else, a non-array top
// level or any invalid record fail the whole document.
func Decode(r io.Reader) ([]models.Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}
	return DecodeBytes(data)
}

func DecodeBytes(data []byte) ([]models.Book, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array of books", models.ErrMalformedLibrary)
	}

	var records []map[string]jsoniter.RawMessage
	if err := strict.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedLibrary, err)
	}
	for i, record := range records {
		if err := checkKeys(record); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", models.ErrMalformedLibrary, i, err)
		}
	}

	var books []models.Book
	if err := strict.Unmarshal(trimmed, &books); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedLibrary, err)
	}

	for i := range books {
		if err := books[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", models.ErrMalformedLibrary, i, err)
		}
	}

	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}

func checkKeys(record map[string]jsoniter.RawMessage) error {
	if record == nil {
		return fmt.Errorf("record is null")
	}
	for _, key := range recordKeys {
		value, ok := record[key]
		if !ok {
			return fmt.Errorf("missing key %q", key)
		}
		if string(bytes.TrimSpace(value)) == "null" {
			return fmt.Errorf("key %q is null", key)
		}
	}
	if len(record) != len(recordKeys) {
		for key := range record {
			if !slices.Contains(recordKeys, key) {
				return fmt.Errorf("unknown key %q", key)
			}
		}
	}
	return nil
}
