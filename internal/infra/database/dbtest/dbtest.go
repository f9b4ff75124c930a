// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"testing"

	"gorm.io/gorm"

	dbgorm "todo-tracker/internal/infra/database/gorm"
)

// Open returns a migrated in-memory SQLite database closed at the end of the test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := dbgorm.Open(dbgorm.Config{Driver: dbgorm.DriverSQLite, Path: "file::memory:"})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := dbgorm.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
