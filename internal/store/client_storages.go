package store

import (
	"context"
	"fmt"

	"github.com/webuxmotion/mdmfd-com/internal/config"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
)

// ClientStorages groups all client-side cache repositories into a single
// value that can be passed around the client service layer.
type ClientStorages struct {
	// DeskRepository is the SQLite-backed cache of the user's desks.
	DeskRepository LocalDeskRepository

	// ItemRepository is the SQLite-backed cache of desk items.
	ItemRepository LocalItemRepository
}

// NewClientStorages initialises the client cache layer using the supplied
// configuration and logger. It opens the SQLite database at cfg.DB.DSN
// (creating the file if it does not yet exist), applies the cache schema,
// and wires the cache repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DeskRepository: NewLocalDeskRepository(db, logger),
		ItemRepository: NewLocalItemRepository(db, logger),
	}, nil
}
