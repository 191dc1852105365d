// Package postgres persists collections in a single Postgres table, as an
// alternative to the flat-file store for deployments that already run a
// database. Records are kept as jsonb rows ordered by position, so the
// whole-collection replace semantics match the file store exactly.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"bazaardirectory/internal/domain"

	_ "github.com/lib/pq"
)

// Store implements domain.CollectionStore over Postgres.
type Store struct {
	DB *sql.DB
}

// Open connects to Postgres and verifies the connection.
func Open(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// EnsureSchema creates the collections table if it does not exist, so a
// fresh database works without a migration step.
func (s *Store) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			collection TEXT NOT NULL,
			position INTEGER NOT NULL,
			record JSONB NOT NULL,
			PRIMARY KEY (collection, position)
		)
	`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", domain.ErrStorage, err)
	}
	return nil
}

// Load reads the collection's rows in position order and decodes them
// into dest.
func (s *Store) Load(ctx context.Context, collection string, dest any) error {
	query := `
		SELECT record FROM collections
		WHERE collection = $1
		ORDER BY position
	`
	rows, err := s.DB.QueryContext(ctx, query, collection)
	if err != nil {
		return fmt.Errorf("%w: load %s: %v", domain.ErrStorage, collection, err)
	}
	defer rows.Close()

	records := make([]json.RawMessage, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return fmt.Errorf("%w: load %s: %v", domain.ErrStorage, collection, err)
		}
		records = append(records, json.RawMessage(raw))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: load %s: %v", domain.ErrStorage, collection, err)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrCorrupt, collection, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrCorrupt, collection, err)
	}
	return nil
}

// Save replaces the collection's rows in one transaction.
func (s *Store) Save(ctx context.Context, collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, collection, err)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, collection, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrStorage, collection, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM collections WHERE collection = $1`, collection); err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrStorage, collection, err)
	}
	for i, rec := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO collections (collection, position, record) VALUES ($1, $2, $3)`,
			collection, i, []byte(rec),
		)
		if err != nil {
			return fmt.Errorf("%w: save %s: %v", domain.ErrStorage, collection, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrStorage, collection, err)
	}
	return nil
}
