package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"velorabook/pkg/schema"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
    owner TEXT NOT NULL,
    key TEXT NOT NULL,
    body TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (owner, key)
);
`

// SQLiteStore keeps books in a single documents table keyed by (owner, key).
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps writes serialized
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, owner string, book schema.Book) error {
	if err := checkOwner(owner); err != nil {
		return err
	}
	body, err := json.Marshal(book)
	if err != nil {
		return fmt.Errorf("encode book: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents(owner, key, body, updated_at) VALUES(?,?,?,?)
		 ON CONFLICT(owner, key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		owner, CurrentBookKey, string(body), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save book for %s: %w", owner, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, owner string) (schema.Book, error) {
	if err := checkOwner(owner); err != nil {
		return schema.Book{}, err
	}
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE owner = ? AND key = ?`, owner, CurrentBookKey,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return schema.Book{}, ErrNotFound
	}
	if err != nil {
		return schema.Book{}, fmt.Errorf("load book for %s: %w", owner, err)
	}

	var book schema.Book
	if err := json.Unmarshal([]byte(body), &book); err != nil {
		return schema.Book{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return book, nil
}
