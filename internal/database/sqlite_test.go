package database_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"hospital-management/internal/config"
	"hospital-management/internal/database"
	"hospital-management/internal/database/dbtest"
	"hospital-management/internal/security"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnsureSchema_CreatesAllTables(t *testing.T) {
	db := dbtest.Open(t)

	var tables []string
	err := db.Raw(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`).Scan(&tables).Error
	require.NoError(t, err)
	assert.Equal(t, []string{
		"appointments", "bills", "doctors", "medical_records", "patients", "prescriptions", "users",
	}, tables)
}

func TestEnsureSchema_IsIdempotentAndSeedsOnce(t *testing.T) {
	ctx := context.Background()
	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "h.db"), BusyTimeout: time.Second}

	db, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(ctx, db))
	require.NoError(t, database.EnsureSchema(ctx, db))
	require.NoError(t, database.Close(db))

	// Reopening the same file must keep the data and still succeed.
	db, err = database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, database.EnsureSchema(ctx, db))

	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM users`).Scan(&count).Error)
	assert.Equal(t, int64(1), count)

	var user struct {
		Password string
		Role     string
	}
	require.NoError(t, db.Raw(`SELECT password, role FROM users WHERE username = ?`, database.BootstrapUsername).Scan(&user).Error)
	assert.Equal(t, security.SHA256Hex(database.BootstrapPassword), user.Password)
	assert.Equal(t, database.BootstrapRole, user.Role)
}

func TestExecute_ReturnsRowsAffected(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	n, err := database.Execute(ctx, db,
		`INSERT INTO doctors (doctor_id, name, specialization, phone, email) VALUES (?, ?, ?, ?, ?)`,
		"d-1", "Dr. Bob", "Cardiology", "555", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = database.Execute(ctx, db,
		`INSERT INTO doctors (doctor_id, name) VALUES (?, ?)`, "d-1", "Dr. Again")
	assert.Error(t, err, "duplicate primary key must surface as an error")
}

func TestEnsureSchema_PropagatesStoreError(t *testing.T) {
	db, mock := dbtest.OpenMock(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).
		WillReturnError(errors.New("disk I/O error"))

	err := database.EnsureSchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_SeedFailure(t *testing.T) {
	db, mock := dbtest.OpenMock(t)

	for i := 0; i < 7; i++ {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(`INSERT OR IGNORE INTO users`).
		WithArgs(database.BootstrapUsername, security.SHA256Hex(database.BootstrapPassword), database.BootstrapRole).
		WillReturnError(errors.New("readonly database"))

	err := database.EnsureSchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed bootstrap user")
	assert.NoError(t, mock.ExpectationsWereMet())
}
