package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// Title, Content and URL pass through as opaque text: whether a value is an
// "ENC:" blob or legacy plaintext is the client's business.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new item at the end of its desk and returns the
// record with server-assigned Position and timestamps.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrDeskNotFound]
//     (the target desk does not exist).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem, item.ItemID, item.DeskID, item.UserID, item.Title, item.Content, item.URL)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Item{}, ErrDeskNotFound
		default:
			return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanItemRow(row, &item); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: scanning error")
		return models.Item{}, err
	}

	return item, nil
}

// GetDeskItems returns all items of one desk in display order.
func (r *itemRepository) GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDeskItemsQuery(deskID, userID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetDeskItems").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetDeskItems").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ItemID, &item.DeskID, &item.UserID, &item.Title, &item.Content, &item.URL, &item.Position, &item.CreatedAt, &item.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*itemRepository.GetDeskItems").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// GetItem returns one item owned by the user, or [ErrItemNotFound].
func (r *itemRepository) GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.db.QueryRowContext(ctx, getItemByID, itemID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error: row is nil")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanItemRow(row, &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error: scanning error")
		return models.Item{}, err
	}

	return item, nil
}

// UpdateItem applies a partial update built dynamically from the non-nil
// fields of update, and returns the updated record.
func (r *itemRepository) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error: building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error: row is nil")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanItemRow(row, &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error: scanning error")
		return models.Item{}, err
	}

	return item, nil
}

// DeleteItem removes one item. Returns [ErrItemNotFound] when the item does
// not exist or belongs to another user.
func (r *itemRepository) DeleteItem(ctx context.Context, itemID string, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteItem, itemID, userID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// ReorderItems rewrites item positions within one desk in a single
// transaction; the order of itemIDs defines the new positions. Items not
// listed keep their positions.
func (r *itemRepository) ReorderItems(ctx context.Context, deskID string, userID int64, itemIDs []string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ReorderItems").Msg("error: beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for position, itemID := range itemIDs {
		if _, err := tx.ExecContext(ctx, reorderItem, position, itemID, deskID, userID); err != nil {
			log.Err(err).Str("func", "*itemRepository.ReorderItems").Msg("error: executing statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*itemRepository.ReorderItems").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// MoveItem relocates an item to another desk at the given position and
// returns the updated record.
//
// Error handling:
//   - No matching row → [ErrItemNotFound].
//   - PostgreSQL foreign_key_violation (23503) → [ErrDeskNotFound]
//     (the target desk does not exist).
func (r *itemRepository) MoveItem(ctx context.Context, itemID, toDeskID string, position int, userID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.db.QueryRowContext(ctx, moveItem, toDeskID, position, itemID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.MoveItem").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Item{}, ErrDeskNotFound
		default:
			return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanItemRow(row, &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.MoveItem").Msg("error: scanning error")
		return models.Item{}, err
	}

	return item, nil
}

func scanItemRow(row *sql.Row, item *models.Item) error {
	return row.Scan(
		&item.ItemID,
		&item.DeskID,
		&item.UserID,
		&item.Title,
		&item.Content,
		&item.URL,
		&item.Position,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
