package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("repeated migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	slot, err := NewSQLiteSlot(db)
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}
	if err := slot.Set(context.Background(), "todos", `[{"id":"1","text":"a","completed":false}]`); err != nil {
		t.Fatalf("set after roundtrip failed: %v", err)
	}
	got, err := slot.Get(context.Background(), "todos")
	if err != nil {
		t.Fatalf("get after roundtrip failed: %v", err)
	}
	if got != `[{"id":"1","text":"a","completed":false}]` {
		t.Fatalf("unexpected value after roundtrip: %q", got)
	}
}

func TestMigrateRecordsAppliedVersions(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "versions.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	got, err := AppliedMigrations(db)
	if err != nil {
		t.Fatalf("applied: %v", err)
	}
	if diff := cmp.Diff([]string{"0001_slots"}, got); diff != "" {
		t.Fatalf("unexpected applied versions (-want +got):\n%s", diff)
	}

	// A second up must not touch stored values.
	slot, _ := NewSQLiteSlot(db)
	if err := slot.Set(context.Background(), "todos", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("repeat up: %v", err)
	}
	if v, err := slot.Get(context.Background(), "todos"); err != nil || v != "[]" {
		t.Fatalf("expected value kept across repeat up, got %q (%v)", v, err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down: %v", err)
	}
	got, err = AppliedMigrations(db)
	if err != nil {
		t.Fatalf("applied after down: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no applied versions after down, got %v", got)
	}
}

func TestSQLiteSlotWrapsDriverErrors(t *testing.T) {
	slot, err := OpenSQLite(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = slot.Close()

	if _, err := slot.Get(context.Background(), "todos"); err == nil || !strings.HasPrefix(err.Error(), "sqlite get: ") {
		t.Fatalf("expected wrapped get error, got %v", err)
	}
	if err := slot.Set(context.Background(), "todos", "[]"); err == nil || !strings.HasPrefix(err.Error(), "sqlite set: ") {
		t.Fatalf("expected wrapped set error, got %v", err)
	}
}
