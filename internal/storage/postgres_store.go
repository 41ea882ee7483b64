package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const collectionsSchema = `
CREATE TABLE IF NOT EXISTS collections (
    name       TEXT PRIMARY KEY,
    data       JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps each collection as a single JSONB document in a
// key/document table. Selected with STORE_DRIVER=postgres when a shared
// server of record is wanted instead of the embedded store.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to Postgres and ensures the collections table exists.
func OpenPostgres(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening postgres store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres store: %w", err)
	}
	if _, err := db.Exec(collectionsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating collections table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(collection string, into interface{}) error {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM collections WHERE name = $1`, collection).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading collection %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("decoding collection %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Put(collection string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", collection, err)
	}
	_, err = s.db.Exec(`INSERT INTO collections (name, data, updated_at) VALUES ($1, $2, now())
	                    ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		collection, data)
	if err != nil {
		return fmt.Errorf("writing collection %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
