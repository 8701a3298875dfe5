package db

import (
	"path/filepath"
	"testing"
)

func TestEnsureSchemaIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.db")

	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	if _, err := database.Exec(`INSERT INTO hardware_assets (name) VALUES ('Laptop')`); err != nil {
		t.Fatalf("inserting row: %v", err)
	}

	// Re-running schema creation must not touch existing data.
	if err := EnsureSchema(database); err != nil {
		t.Fatalf("EnsureSchema second run: %v", err)
	}

	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM hardware_assets`).Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after re-initialization, got %d", count)
	}
}
