package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/crossfill/xwords/internal/models"
)

// SQLiteStore persists fill records in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path. Use
// ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Migrate creates the fills table if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS fills (
		id TEXT PRIMARY KEY,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		input TEXT NOT NULL,
		solution TEXT NOT NULL,
		strategy TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_fills_created_at ON fills(created_at DESC);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveFill inserts one fill record.
func (s *SQLiteStore) SaveFill(ctx context.Context, rec models.FillRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fills (id, width, height, input, solution, strategy, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Width, rec.Height, rec.Input, rec.Solution, rec.Strategy, rec.DurationMs, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save fill: %w", err)
	}
	return nil
}

// GetFill fetches one fill record by id.
func (s *SQLiteStore) GetFill(ctx context.Context, id string) (*models.FillRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, width, height, input, solution, strategy, duration_ms, created_at
		 FROM fills WHERE id = ?`, id)

	var rec models.FillRecord
	err := row.Scan(&rec.ID, &rec.Width, &rec.Height, &rec.Input, &rec.Solution,
		&rec.Strategy, &rec.DurationMs, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fill: %w", err)
	}
	return &rec, nil
}

// ListFills returns the most recent fill records.
func (s *SQLiteStore) ListFills(ctx context.Context, limit int) ([]models.FillRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, width, height, input, solution, strategy, duration_ms, created_at
		 FROM fills ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fills: %w", err)
	}
	defer rows.Close()

	return scanFills(rows)
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
