package sqlite

import (
	"path/filepath"
	"testing"
)

func TestOpen_File(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "shelter.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer db.Close()

	var fk int
	if err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk); err != nil {
		t.Fatalf("pragma query failed: %v", err)
	}
	if fk != 1 {
		t.Fatalf("expected foreign_keys on, got %d", fk)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
