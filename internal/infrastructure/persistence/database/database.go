// Package database provides the core functionality for creating and managing
// database connections in a clean, isolated manner.
package database

import (
	"database/sql"
	"strings"
	"time"

	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// DB represents a wrapper around the standard SQL database connection.
type DB struct {
	*sql.DB
}

// DriverFor selects the SQL driver based on the DSN scheme. Remote libSQL
// URLs use the libsql driver, everything else is treated as a local
// SQLite file path.
func DriverFor(dsn string) string {
	if strings.HasPrefix(dsn, "libsql://") {
		return "libsql"
	}
	return "sqlite3"
}

// Open establishes a database connection for the given DSN with logging.
func Open(dsn string, logger *logging.ChanneledLogger) (*DB, error) {
	start := time.Now()
	driverName := DriverFor(dsn)
	logger.Database().Debug("Creating new database connection", "driverName", driverName)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		logger.Database().Error("Failed to open database connection", "error", err.Error(), "driverName", driverName)
		return nil, err
	}

	if err = db.Ping(); err != nil {
		logger.Database().Error("Database ping failed", "error", err.Error(), "driverName", driverName)
		return nil, err
	}

	logger.Database().Info("Database connection established", "driverName", driverName, "duration", time.Since(start))
	return &DB{db}, nil
}
