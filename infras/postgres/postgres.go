package postgres

import (
	"fmt"
	"jumatrek/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
)

// Connection splits reads from writes so list-heavy traffic can ride a
// replica while intake and moderation hit the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect("read", cfg.DB.Postgres.Read, *cfg),
		Write: connect("write", cfg.DB.Postgres.Write, *cfg),
	}
}

func databaseName(cfg config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}
	return baseName
}

// connect dials with retries, returning nil once attempts are exhausted.
func connect(role string, db config.PostgresInstance, cfg config.Config) *sqlx.DB {
	dbName := databaseName(cfg, db.Name)
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		db.Username,
		db.Password,
		net.JoinHostPort(db.Host, db.Port),
		dbName,
		db.SSLMode,
	)

	for attempt := range cfg.DB.Postgres.MaxRetry {
		conn, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			conn.SetMaxIdleConns(maxIdleConnections)
			conn.SetMaxOpenConns(maxOpenConnections)

			log.Info().
				Str("role", role).
				Str("host", db.Host).
				Str("port", db.Port).
				Str("dbName", dbName).
				Msg("connected to database")

			return conn
		}

		log.Error().
			Err(err).
			Str("role", role).
			Str("host", db.Host).
			Str("dbName", dbName).
			Int("attempt", attempt+1).
			Msg("failed connecting to database, retrying")

		time.Sleep(time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil
}
