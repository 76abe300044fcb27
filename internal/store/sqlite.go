package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jonathan/social-poster/internal/types"
)

// SQLiteStore is a file-backed Store. Profiles are kept as JSON in a single
// table keyed by brand name, so concurrent writers from separate processes
// see last-write-wins semantics.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}

	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return s, nil
}

// init creates the necessary tables if they don't exist
func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS brand_profiles (
			name        TEXT PRIMARY KEY,
			profile     TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);
	`)
	return err
}

// Get returns the profile stored under name, or (nil, nil) when absent.
func (s *SQLiteStore) Get(ctx context.Context, name string) (*types.BrandProfile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT profile FROM brand_profiles WHERE name = ?
	`, name)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	var profile types.BrandProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %q: %w", name, err)
	}
	return &profile, nil
}

// Set stores a profile under name, replacing any previous entry.
func (s *SQLiteStore) Set(ctx context.Context, name string, profile *types.BrandProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile %q: %w", name, err)
	}

	now := time.Now().Format(time.RFC3339)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO brand_profiles (name, profile, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			profile=excluded.profile, updated_at=excluded.updated_at
	`, name, string(raw), now)
	return err
}

// List returns all stored brand names in sorted order.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM brand_profiles ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
