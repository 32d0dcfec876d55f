package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/crossfill/xwords/internal/models"
)

// PostgresStore persists fill records in Postgres.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection pool against the given URL.
func NewPostgresStore(url string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Migrate creates the fills table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS fills (
		id VARCHAR(36) PRIMARY KEY,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		input TEXT NOT NULL,
		solution TEXT NOT NULL,
		strategy VARCHAR(32) NOT NULL,
		duration_ms BIGINT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_fills_created_at ON fills(created_at DESC);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveFill inserts one fill record.
func (s *PostgresStore) SaveFill(ctx context.Context, rec models.FillRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fills (id, width, height, input, solution, strategy, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.Width, rec.Height, rec.Input, rec.Solution, rec.Strategy, rec.DurationMs, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save fill: %w", err)
	}
	return nil
}

// GetFill fetches one fill record by id.
func (s *PostgresStore) GetFill(ctx context.Context, id string) (*models.FillRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, width, height, input, solution, strategy, duration_ms, created_at
		 FROM fills WHERE id = $1`, id)

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
func (s *PostgresStore) ListFills(ctx context.Context, limit int) ([]models.FillRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, width, height, input, solution, strategy, duration_ms, created_at
		 FROM fills ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fills: %w", err)
	}
	defer rows.Close()

	return scanFills(rows)
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error { return s.db.Close() }

func scanFills(rows *sql.Rows) ([]models.FillRecord, error) {
	var fills []models.FillRecord
	for rows.Next() {
		var rec models.FillRecord
		if err := rows.Scan(&rec.ID, &rec.Width, &rec.Height, &rec.Input, &rec.Solution,
			&rec.Strategy, &rec.DurationMs, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fill: %w", err)
		}
		fills = append(fills, rec)
	}
	return fills, rows.Err()
}
