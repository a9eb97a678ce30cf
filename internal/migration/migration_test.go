package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var testFS = fstest.MapFS{
	"001_initial.sql": &fstest.MapFile{
		Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);"),
	},
	"002_add_name.sql": &fstest.MapFile{
		Data: []byte("ALTER TABLE widgets ADD COLUMN name TEXT;"),
	},
}

func TestApplyMigrations(t *testing.T) {
	db := newTestDB(t)
	runner := NewRunner(db, testFS)

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Both migrations must have taken effect.
	if _, err := db.Exec("INSERT INTO widgets (id, name) VALUES ('a', 'b')"); err != nil {
		t.Errorf("schema incomplete after migrations: %v", err)
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	runner := NewRunner(db, testFS)

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("first ApplyMigrations() error = %v", err)
	}
	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second run applied = %d, want 0", applied)
	}
}

func TestValidateVersion(t *testing.T) {
	db := newTestDB(t)
	runner := NewRunner(db, testFS)

	// Fresh database is behind.
	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() on a fresh database succeeded, want error")
	}

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatal(err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() after migrating error = %v", err)
	}
}

func TestReadMigrationFilesRejectsMalformedNames(t *testing.T) {
	db := newTestDB(t)
	bad := fstest.MapFS{
		"notaversion.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}
	runner := NewRunner(db, bad)

	if _, err := runner.ReadMigrationFiles(); err == nil {
		t.Error("ReadMigrationFiles() accepted a malformed file name")
	}
}
