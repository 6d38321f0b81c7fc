// Package migrations applies the embedded SQL schema with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
)

//go:embed sql/*.sql
var files embed.FS

// Up applies every pending migration to the database at dsn and returns the
// resulting schema version.
func Up(dsn string) (uint, error) {
	m, closeFn, err := newMigrate(dsn)
	if err != nil {
		return 0, err
	}
	defer closeFn()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}
	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}
	return version, nil
}

// Down rolls back every applied migration.
func Down(dsn string) error {
	m, closeFn, err := newMigrate(dsn)
	if err != nil {
		return err
	}
	defer closeFn()

	if err = m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back migrations: %w", err)
	}
	return nil
}

func newMigrate(dsn string) (*migrate.Migrate, func(), error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration driver: %w", err)
	}

	source, err := iofs.New(files, "sql")
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return m, func() { _, _ = m.Close() }, nil
}
