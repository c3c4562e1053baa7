package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DatabaseType represents the kind of backing store the server runs on.
type DatabaseType string

const (
	DatabaseTypeSQLite     DatabaseType = "sqlite"
	DatabaseTypePostgreSQL DatabaseType = "postgres"
)

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Type     DatabaseType
	SQLite   SQLiteConfig
	Postgres PostgresConfig
}

// SQLiteConfig holds SQLite specific configuration.
type SQLiteConfig struct {
	Path string
}

// PostgresConfig holds PostgreSQL specific configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
	SSLMode  string
}

// GetDSN returns the data source name for the configured database.
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case DatabaseTypePostgreSQL:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Postgres.Host,
			c.Postgres.Username,
			c.Postgres.Password,
			c.Postgres.Database,
			c.Postgres.Port,
			c.Postgres.SSLMode,
		)
	default:
		return c.SQLite.Path
	}
}

// IsSQLite returns true if the database type is SQLite.
func (c *DatabaseConfig) IsSQLite() bool {
	return c.Type != DatabaseTypePostgreSQL
}

// EnsureDirectoryExists creates the directory for the SQLite database file.
func (c *DatabaseConfig) EnsureDirectoryExists() error {
	if c.IsSQLite() {
		return os.MkdirAll(filepath.Dir(c.SQLite.Path), 0o755)
	}
	return nil
}

// GetDatabaseConfig builds the database configuration from the environment.
func GetDatabaseConfig() *DatabaseConfig {
	cfg := &DatabaseConfig{
		Type: DatabaseTypeSQLite,
		SQLite: SQLiteConfig{
			Path: getSQLitePath(),
		},
		Postgres: PostgresConfig{
			Host:     envOr("ADH_PG_HOST", "localhost"),
			Port:     envOr("ADH_PG_PORT", "5432"),
			Database: envOr("ADH_PG_DATABASE", "ad_hub"),
			Username: envOr("ADH_PG_USER", "postgres"),
			Password: os.Getenv("ADH_PG_PASSWORD"),
			SSLMode:  envOr("ADH_PG_SSLMODE", "disable"),
		},
	}
	if os.Getenv("ADH_DB_TYPE") == string(DatabaseTypePostgreSQL) {
		cfg.Type = DatabaseTypePostgreSQL
	}
	return cfg
}

func getSQLitePath() string {
	if path := os.Getenv("ADH_DB_PATH"); path != "" {
		return path
	}
	if IsDebug() {
		return fmt.Sprintf("db/%s.db", GetName())
	}
	return fmt.Sprintf("/etc/%s/%s.db", GetName(), GetName())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
