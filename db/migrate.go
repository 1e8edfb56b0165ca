package db

import (
	"database/sql"
	"errors"
	"fmt"
	"simple-bank-api/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies every pending migration found at sourceURL
// (e.g. "file://db/migrations") to the given database.
func Migrate(database *sql.DB, sourceURL string) error {
	log := logger.Log.WithField("source", sourceURL)
	log.Info("Running database migrations")

	driver, err := postgres.WithInstance(database, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	mig, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrate up: %w", err)
	}

	version, dirty, _ := mig.Version()
	log.WithField("version", version).WithField("dirty", dirty).Info("Database schema is up to date")
	return nil
}
