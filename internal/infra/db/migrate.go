package db

import (
	"errors"

	"servicebook/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrateSchema applies pending schema migrations. A schema already at the
// latest version is not an error.
func MigrateSchema(migrationsPath string, cfg config.DBConfig) error {
	m, err := migrate.New(migrationsPath, cfg.BuildDSN())
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}
	return nil
}
