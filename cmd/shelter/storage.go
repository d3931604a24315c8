package main

import (
	"context"
	"database/sql"
	"fmt"

	"cat-shelter-admin/internal/adapters/storage/postgres"
	"cat-shelter-admin/internal/adapters/storage/sqlite"
	"cat-shelter-admin/internal/adapters/storage/sqlstore"
	"cat-shelter-admin/internal/config"
)

// openStorage abre y migra la base configurada. Con driver memory devuelve db nil.
func openStorage(ctx context.Context, cfg config.Config) (*sql.DB, sqlstore.Dialect, error) {
	var (
		db      *sql.DB
		dialect sqlstore.Dialect
		err     error
	)
	switch cfg.DBDriver {
	case config.DriverMemory:
		return nil, sqlstore.Postgres, nil
	case config.DriverPostgres:
		db, err = postgres.Open(cfg.DBDSN)
		dialect = sqlstore.Postgres
	case config.DriverSQLite:
		db, err = sqlite.Open(cfg.SQLitePath)
		dialect = sqlstore.SQLite
	default:
		return nil, 0, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	if err := sqlstore.New(db, dialect).Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, 0, err
	}
	return db, dialect, nil
}
