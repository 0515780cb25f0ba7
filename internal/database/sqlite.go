package database

import (
	"context"
	"fmt"
	"time"

	"hospital-management/internal/config"
	"hospital-management/internal/security"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Initial account created on first run. Change it with `hospital user add`.
const (
	BootstrapUsername = "admin"
	BootstrapPassword = "admin123"
	BootstrapRole     = "admin"
)

// Foreign keys are declared for documentation only; the foreign_keys pragma is
// left off so unknown references are stored as typed.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		role TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		patient_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER,
		gender TEXT,
		phone TEXT,
		address TEXT,
		blood_group TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		doctor_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		specialization TEXT,
		phone TEXT,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		appointment_id TEXT PRIMARY KEY,
		patient_id TEXT,
		doctor_id TEXT,
		date TEXT,
		time TEXT,
		status TEXT,
		FOREIGN KEY (patient_id) REFERENCES patients (patient_id),
		FOREIGN KEY (doctor_id) REFERENCES doctors (doctor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS medical_records (
		record_id TEXT PRIMARY KEY,
		patient_id TEXT,
		doctor_id TEXT,
		date TEXT,
		diagnosis TEXT,
		treatment TEXT,
		notes TEXT,
		FOREIGN KEY (patient_id) REFERENCES patients (patient_id),
		FOREIGN KEY (doctor_id) REFERENCES doctors (doctor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS prescriptions (
		prescription_id TEXT PRIMARY KEY,
		record_id TEXT,
		medicine_name TEXT,
		dosage TEXT,
		frequency TEXT,
		duration TEXT,
		FOREIGN KEY (record_id) REFERENCES medical_records (record_id)
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		bill_id TEXT PRIMARY KEY,
		patient_id TEXT,
		date TEXT,
		description TEXT,
		amount REAL,
		status TEXT,
		FOREIGN KEY (patient_id) REFERENCES patients (patient_id)
	)`,
}

const seedBootstrapUser = `INSERT OR IGNORE INTO users (username, password, role) VALUES (?, ?, ?)`

// Open opens (creating if needed) the database file and returns a handle holding a
// single connection, used for every statement of the process.
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d", cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := gorm.Open(sqlite.Open(dsn), NewGormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Debug("database opened", zap.String("path", cfg.Path))
	return db, nil
}

// NewGormConfig returns the gorm settings shared by Open and tests. SQL tracing is
// routed to the zap logger at debug level.
func NewGormConfig(log *zap.Logger) *gorm.Config {
	level := gormlogger.Silent
	if log.Core().Enabled(zapcore.DebugLevel) {
		level = gormlogger.Info
	}
	return &gorm.Config{
		SkipDefaultTransaction: true,
		Logger: gormlogger.New(zap.NewStdLog(log.Named("sql")), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// EnsureSchema creates the tables and the bootstrap account. It is idempotent and
// runs on every startup.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := Execute(ctx, db, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	if _, err := Execute(ctx, db, seedBootstrapUser,
		BootstrapUsername, security.SHA256Hex(BootstrapPassword), BootstrapRole); err != nil {
		return fmt.Errorf("failed to seed bootstrap user: %w", err)
	}
	return nil
}

// Execute runs one parameterized statement outside any transaction, so it is
// committed as soon as it returns.
func Execute(ctx context.Context, db *gorm.DB, statement string, args ...any) (int64, error) {
	res := db.WithContext(ctx).Exec(statement, args...)
	return res.RowsAffected, res.Error
}

// Close releases the underlying connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
