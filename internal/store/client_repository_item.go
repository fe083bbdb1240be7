package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/models"
)

// localItemRepository is the SQLite-backed implementation of
// [LocalItemRepository].
type localItemRepository struct {
	db     *ClientDB
	logger *logger.Logger
}

// NewLocalItemRepository constructs a [LocalItemRepository] backed by the
// provided cache database and logger.
func NewLocalItemRepository(db *ClientDB, logger *logger.Logger) LocalItemRepository {
	logger.Debug().Msg("creating local item repository")
	return &localItemRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceDeskItems implements [LocalItemRepository]. The delete and inserts
// run in one transaction so a failed refresh never leaves a half-written
// cache.
func (r *localItemRepository) ReplaceDeskItems(ctx context.Context, deskID string, userID int64, items ...models.Item) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*localItemRepository.ReplaceDeskItems").Msg("error: beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteLocalDeskItems, deskID, userID); err != nil {
		log.Err(err).Str("func", "*localItemRepository.ReplaceDeskItems").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, saveLocalItem,
			item.ItemID, deskID, userID, item.Title, item.Content, item.URL, item.Position, item.CreatedAt, item.UpdatedAt)
		if err != nil {
			log.Err(err).Str("func", "*localItemRepository.ReplaceDeskItems").Msg("error: executing statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*localItemRepository.ReplaceDeskItems").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// SaveItem implements [LocalItemRepository].
func (r *localItemRepository) SaveItem(ctx context.Context, item models.Item) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveLocalItem,
		item.ItemID, item.DeskID, item.UserID, item.Title, item.Content, item.URL, item.Position, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*localItemRepository.SaveItem").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetDeskItems implements [LocalItemRepository].
func (r *localItemRepository) GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getLocalDeskItems, deskID, userID)
	if err != nil {
		log.Err(err).Str("func", "*localItemRepository.GetDeskItems").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err = rows.Scan(&item.ItemID, &item.DeskID, &item.UserID, &item.Title, &item.Content, &item.URL, &item.Position, &item.CreatedAt, &item.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*localItemRepository.GetDeskItems").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// GetItem implements [LocalItemRepository].
func (r *localItemRepository) GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.db.QueryRowContext(ctx, getLocalItem, itemID, userID)

	err := row.Scan(&item.ItemID, &item.DeskID, &item.UserID, &item.Title, &item.Content, &item.URL, &item.Position, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*localItemRepository.GetItem").Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// DeleteItem implements [LocalItemRepository].
func (r *localItemRepository) DeleteItem(ctx context.Context, itemID string, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteLocalItem, itemID, userID); err != nil {
		log.Err(err).Str("func", "*localItemRepository.DeleteItem").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
