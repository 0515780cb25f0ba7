// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"hospital-management/internal/config"
	"hospital-management/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open creates a fresh database file under t.TempDir with the schema applied.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "hospital.db"),
		BusyTimeout: time.Second,
	}
	db, err := database.Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

// OpenMock returns a gorm handle backed by sqlmock. The driver's version probe is
// already expected; it reports a version without RETURNING support so inserts are
// plain Exec calls.
func OpenMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	mock.ExpectQuery(`select sqlite_version\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"sqlite_version()"}).AddRow("3.30.1"))

	cfg := database.NewGormConfig(zap.NewNop())
	cfg.DisableAutomaticPing = true
	db, err := gorm.Open(&sqlite.Dialector{Conn: conn}, cfg)
	if err != nil {
		t.Fatalf("open gorm over sqlmock: %v", err)
	}
	return db, mock
}
