// Package migrations применяет встроенные SQL-миграции таблицы состояния
// витрины к PostgreSQL и SQLite через golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql
var files embed.FS

// RunPostgres применяет миграции к базе PostgreSQL, открытой через драйвер pgx.
func RunPostgres(db *sql.DB) error {
	const op = "migrations.RunPostgres"
	driver, err := pgxv5.WithInstance(db, &pgxv5.Config{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := up("sql/postgres", "pgx_v5", driver); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RunSQLite применяет миграции к базе SQLite, открытой через modernc.org/sqlite.
func RunSQLite(db *sql.DB) error {
	const op = "migrations.RunSQLite"
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := up("sql/sqlite", "sqlite", driver); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func up(dir, dbName string, driver database.Driver) error {
	src, err := iofs.New(files, dir)
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, dbName, driver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
