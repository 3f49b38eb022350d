// Package testdb opens a migrated SQLite database for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"portfolio-api/database"

	"gorm.io/gorm"
)

// New returns a fresh database file under t.TempDir, closed on cleanup.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
