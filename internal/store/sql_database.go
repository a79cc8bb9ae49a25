package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/neverov-dev/passvault/internal/config"
	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/migrations"
)

// DB wraps a database/sql connection together with the SQL dialect details
// that differ between the supported backends: the placeholder format used by
// the query builder and the driver-specific error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database connection for the given DSN and verifies it
// with a ping. The backend is selected by the DSN scheme: "postgres://" and
// "postgresql://" DSNs are served by the pgx driver, anything else is treated
// as a SQLite database file path (created on first use).
func NewConnect(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	driver := driverForDSN(cfg.DSN)

	if driver == "sqlite3" {
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnect").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", driver).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", driver).Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		driver:             driver,
		builder:            builderForDriver(driver),
		errorClassificator: classificatorForDriver(driver),
		logger:             log,
	}

	return db, nil
}

// Migrate applies the embedded schema migrations for the active backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func driverForDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite3"
}

func builderForDriver(driver string) sq.StatementBuilderType {
	if driver == "pgx" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func classificatorForDriver(driver string) ErrorClassificator {
	if driver == "pgx" {
		return NewPostgresErrorClassifier()
	}
	return NewSQLiteErrorClassifier()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
