package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"pledge-data/db/migrations"
)

// MigratePostgres applies the postgres migrations to the database at addr.
func MigratePostgres(addr string) error {
	return migrateUp("postgres", addr)
}

// MigrateSQLite applies the sqlite migrations to the database file at path.
func MigrateSQLite(path string) error {
	return migrateUp("sqlite", "sqlite://"+path)
}

// migrateUp applies the migrations under dir up to migrations.Version.
func migrateUp(dir, databaseURL string) error {
	driver, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, databaseURL)
	if err != nil {
		return fmt.Errorf("open %s migrations: %w", dir, err)
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
