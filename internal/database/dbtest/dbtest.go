// Package dbtest opens throwaway migrated ledger databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/mohamedlefliti/projetennaciria/internal/config"
	"github.com/mohamedlefliti/projetennaciria/internal/database"

	"gorm.io/gorm"
)

// Open returns a migrated database stored under t.TempDir().
// The connection is closed when the test finishes.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test_ledger.db")}
	db, err := database.Init(cfg)
	if err != nil {
		t.Fatalf("init test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
