// Package store persists fill records. Two drivers are provided: Postgres
// for the service deployment and SQLite for single-machine use.
package store

import (
	"context"
	"errors"

	"github.com/crossfill/xwords/internal/models"
)

// ErrNotFound is returned when a fill record does not exist.
var ErrNotFound = errors.New("fill record not found")

// Store persists and retrieves fill records.
type Store interface {
	Migrate(ctx context.Context) error
	SaveFill(ctx context.Context, rec models.FillRecord) error
	GetFill(ctx context.Context, id string) (*models.FillRecord, error)
	ListFills(ctx context.Context, limit int) ([]models.FillRecord, error)
	Close() error
}
