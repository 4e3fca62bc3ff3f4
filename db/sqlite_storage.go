package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"bookshelf/models"
)

var _ Storage = (*SQLiteStorage)(nil)

type bookRow struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	Position   int    `bun:"position,notnull"`
	Title      string `bun:"title,notnull"`
	Author     string `bun:"author,notnull"`
	Year       int    `bun:"year,notnull"`
	Genre      string `bun:"genre,notnull"`
	ReadStatus string `bun:"read_status,notnull"`
}

// SQLiteStorage mirrors the library into a single SQLite table. Every Save
// replaces the table contents inside one transaction.
type SQLiteStorage struct {
	path string
	db   *bun.DB
}

func CreateSQLiteStorage(ctx context.Context, path string) (*SQLiteStorage, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	if _, err := bunDB.NewCreateTable().Model((*bookRow)(nil)).IfNotExists().Exec(ctx); err != nil {
		bunDB.Close()
		return nil, fmt.Errorf("create books table: %w", err)
	}

	return &SQLiteStorage{path: path, db: bunDB}, nil
}

func (storage *SQLiteStorage) Load(ctx context.Context) ([]models.Book, error) {
	var rows []bookRow
	if err := storage.db.NewSelect().Model(&rows).Order("position ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("select books: %w", err)
	}

	books := make([]models.Book, 0, len(rows))
	for i, row := range rows {
		status, err := models.ParseReadStatus(row.ReadStatus)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", models.ErrMalformedLibrary, i, err)
		}
		books = append(books, models.Book{
			Title:      row.Title,
			Author:     row.Author,
			Year:       row.Year,
			Genre:      row.Genre,
			ReadStatus: status,
		})
	}
	return books, nil
}

func (storage *SQLiteStorage) Save(ctx context.Context, books []models.Book) error {
	rows := make([]bookRow, 0, len(books))
	for i, b := range books {
		rows = append(rows, bookRow{
			Position:   i,
			Title:      b.Title,
			Author:     b.Author,
			Year:       b.Year,
			Genre:      b.Genre,
			ReadStatus: string(b.ReadStatus),
		})
	}

	return storage.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*bookRow)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return fmt.Errorf("clear books: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert books: %w", err)
		}
		return nil
	})
}

func (storage *SQLiteStorage) Close() error {
	return storage.db.Close()
}

func (storage *SQLiteStorage) String() string {
	return "sqlite:" + storage.path
}
