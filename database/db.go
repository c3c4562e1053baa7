// Package database initializes the gorm-backed storage layer for the ad
// board, supporting SQLite and PostgreSQL backends.
package database

import (
	"errors"

	"ad-hub/config"
	"ad-hub/database/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func migrateModels(db *gorm.DB) error {
	models := []any{
		&model.User{},
		&model.Ad{},
		&model.Comment{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}

// InitDB opens the configured database, applies pragmas and migrates the
// schema. The returned handle is the only one; there is no package-level
// singleton, callers pass it down explicitly.
func InitDB(dbConfig *config.DatabaseConfig) (*gorm.DB, error) {
	if err := dbConfig.EnsureDirectoryExists(); err != nil {
		return nil, err
	}

	var gormLogger gormlogger.Interface
	if config.IsDebug() {
		gormLogger = gormlogger.Default
	} else {
		gormLogger = gormlogger.Discard
	}

	c := &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	}

	var db *gorm.DB
	var err error
	if dbConfig.IsSQLite() {
		dsn := dbConfig.GetDSN() + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
		db, err = gorm.Open(sqlite.Open(dsn), c)
	} else {
		db, err = gorm.Open(postgres.Open(dbConfig.GetDSN()), c)
	}
	if err != nil {
		return nil, err
	}

	if dbConfig.IsSQLite() {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			return nil, err
		}
	}

	if err := migrateModels(db); err != nil {
		return nil, err
	}

	return db, nil
}

// CloseDB checkpoints the WAL (SQLite) and closes the underlying connection.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	_ = Checkpoint(db)
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsNotFound reports whether err is the record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicated reports whether err is a unique-constraint violation.
func IsDuplicated(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Checkpoint flushes the SQLite write-ahead log into the main database file.
func Checkpoint(db *gorm.DB) error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
