package db

import (
	"errors"

	"parkspace/internal/pkg/config"
	"parkspace/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies all pending migrations. The schema carries the one
// invariant the application cannot enforce on its own: the exclusion
// constraint over confirmed reservation periods.
func RunMigrations(cfg config.DBConfig) error {
	dsn := "pgx5://" + cfg.User + ":" + cfg.Password + "@" + cfg.Host + ":" + cfg.Port + "/" + cfg.DBName + "?sslmode=" + cfg.SSLMode

	m, err := migrate.New("file://"+cfg.MigrationsPath, dsn)
	if err != nil {
		return errs.Wrap(err, "failed to create migrator")
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "failed to run migrations")
	}
	return nil
}
