package store

import (
	"context"
	"database/sql"
	"fmt"

	// SQLite driver for the client-side cache database.
	_ "github.com/mattn/go-sqlite3"
	"github.com/webuxmotion/mdmfd-com/internal/config"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
)

// ClientDB wraps the SQLite connection used for the client's local cache.
type ClientDB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (and creates, if missing) the SQLite cache database
// at cfg.DSN. Foreign keys are enabled so deleting a cached desk cascades to
// its cached items, mirroring the server's schema.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*ClientDB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// SQLite serialises writers; a single connection avoids database-locked
	// errors from the driver.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to local cache database successfully")

	return &ClientDB{DB: conn, logger: log}, nil
}

// Migrate creates the cache schema if it does not exist yet. The cache
// schema is two tables and never changes shape independently of the app
// binary, so it is applied directly; goose-managed migrations are reserved
// for the server database.
func (db *ClientDB) Migrate() error {
	if _, err := db.Exec(createClientSchema); err != nil {
		return fmt.Errorf("client cache migration error: %w", err)
	}
	return nil
}
