package helper

import (
	"errors"
	"fmt"
	"net"

	"jumatrek/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

func migrator(cfg *config.Config) (*migrate.Migrate, error) {
	write := cfg.DB.Postgres.Write

	dbName := write.Name
	if cfg.DB.Postgres.Prefix != "" {
		dbName = cfg.DB.Postgres.Prefix + dbName
	}

	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		dbName,
		write.SSLMode,
		cfg.DB.Postgres.MigrationTable,
	)

	mig, err := migrate.New(migrationsSource, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func run(cfg *config.Config, action string, apply func(*migrate.Migrate) error) error {
	mig, err := migrator(cfg)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := apply(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg("database migration completed")

	return nil
}

// Up applies every pending migration.
func Up(cfg *config.Config) error {
	return run(cfg, "up", func(m *migrate.Migrate) error { return m.Up() })
}

// StepUp applies the next pending migration only.
func StepUp(cfg *config.Config) error {
	return run(cfg, "step-up", func(m *migrate.Migrate) error { return m.Steps(1) })
}

// Down rolls back the most recent migration.
func Down(cfg *config.Config) error {
	return run(cfg, "down", func(m *migrate.Migrate) error { return m.Steps(-1) })
}

// Drop rolls back every applied migration.
func Drop(cfg *config.Config) error {
	return run(cfg, "drop", func(m *migrate.Migrate) error { return m.Down() })
}
