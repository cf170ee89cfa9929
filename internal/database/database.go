package database

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver for database/sql
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"weather-dashboard/config"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

//go:embed migrations
var migrations embed.FS

// Connect opens the history database selected by cfg.Driver.
func Connect(ctx context.Context, cfg config.StorageConfig) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}

	db, err := sqlx.ConnectContext(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// SQLite allows one writer; a single connection also keeps :memory: databases shared.
		db.SetMaxOpenConns(1)

		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return db, nil
}

// NewMigrator builds a migrate instance over the embedded migrations for driver.
// Closing the returned instance closes db as well.
func NewMigrator(db *sqlx.DB, driver string) (*migrate.Migrate, error) {
	var (
		instance migratedb.Driver
		err      error
	)

	switch driver {
	case DriverSQLite:
		instance, err = sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	case DriverPostgres:
		instance, err = postgres.WithInstance(db.DB, &postgres.Config{})
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create %s migration driver: %w", driver, err)
	}

	return newMigrate(instance, driver)
}

// Migrate applies every pending up migration. db stays open. On PostgreSQL the
// migration runs on a dedicated connection that is returned to the pool afterwards;
// the sqlite3 driver works on db directly and holds nothing of its own.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	if driver == DriverPostgres {
		return migratePostgres(ctx, db)
	}

	m, err := NewMigrator(db, driver)
	if err != nil {
		return err
	}

	return up(m)
}

func migratePostgres(ctx context.Context, db *sqlx.DB) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("could not reserve a connection for migrations: %w", err)
	}

	instance, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		conn.Close()
		return fmt.Errorf("could not create %s migration driver: %w", DriverPostgres, err)
	}

	m, err := newMigrate(instance, DriverPostgres)
	if err != nil {
		instance.Close()
		return err
	}
	// Built from a connection, the driver closes only conn, never db.
	defer m.Close()

	return up(m)
}

func newMigrate(instance migratedb.Driver, driver string) (*migrate.Migrate, error) {
	dir, dbName := "migrations/sqlite", "sqlite3"
	if driver == DriverPostgres {
		dir, dbName = "migrations/postgres", "postgres"
	}

	source, err := iofs.New(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dbName, instance)
	if err != nil {
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}

	return m, nil
}

func up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	return nil
}
