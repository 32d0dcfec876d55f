package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crossfill/xwords/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return s
}

func testRecord(id string) models.FillRecord {
	return models.FillRecord{
		ID:         id,
		Width:      3,
		Height:     3,
		Input:      "CAT      ",
		Solution:   "CATERAODE",
		Strategy:   "priority",
		DurationMs: 12,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestSaveAndGetFill(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := testRecord("fill-1")
	if err := s.SaveFill(ctx, rec); err != nil {
		t.Fatalf("SaveFill() error = %v", err)
	}

	got, err := s.GetFill(ctx, "fill-1")
	if err != nil {
		t.Fatalf("GetFill() error = %v", err)
	}
	if got.Solution != rec.Solution || got.Strategy != rec.Strategy || got.Width != rec.Width {
		t.Errorf("GetFill() = %+v, want %+v", got, rec)
	}
}

func TestGetFillNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetFill(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetFill() error = %v, want ErrNotFound", err)
	}
}

func TestListFills(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		rec := testRecord(id)
		if err := s.SaveFill(ctx, rec); err != nil {
			t.Fatalf("SaveFill(%s) error = %v", id, err)
		}
	}

	fills, err := s.ListFills(ctx, 2)
	if err != nil {
		t.Fatalf("ListFills() error = %v", err)
	}
	if len(fills) != 2 {
		t.Errorf("ListFills(limit=2) returned %d records", len(fills))
	}

	all, err := s.ListFills(ctx, 0)
	if err != nil {
		t.Fatalf("ListFills() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListFills(default) returned %d records, want 3", len(all))
	}
}
