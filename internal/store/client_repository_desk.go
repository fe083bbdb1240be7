package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/models"
)

// localDeskRepository is the SQLite-backed implementation of
// [LocalDeskRepository].
type localDeskRepository struct {
	db     *ClientDB
	logger *logger.Logger
}

// NewLocalDeskRepository constructs a [LocalDeskRepository] backed by the
// provided cache database and logger.
func NewLocalDeskRepository(db *ClientDB, logger *logger.Logger) LocalDeskRepository {
	logger.Debug().Msg("creating local desk repository")
	return &localDeskRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceDesks implements [LocalDeskRepository]. The delete and inserts run
// in one transaction so a failed refresh never leaves a half-written cache.
func (r *localDeskRepository) ReplaceDesks(ctx context.Context, userID int64, desks ...models.Desk) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*localDeskRepository.ReplaceDesks").Msg("error: beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteLocalDesks, userID); err != nil {
		log.Err(err).Str("func", "*localDeskRepository.ReplaceDesks").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, desk := range desks {
		_, err = tx.ExecContext(ctx, saveLocalDesk,
			desk.DeskID, userID, desk.Name, desk.Slug, desk.Position, desk.CreatedAt, desk.UpdatedAt)
		if err != nil {
			log.Err(err).Str("func", "*localDeskRepository.ReplaceDesks").Msg("error: executing statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*localDeskRepository.ReplaceDesks").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// SaveDesk implements [LocalDeskRepository].
func (r *localDeskRepository) SaveDesk(ctx context.Context, desk models.Desk) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveLocalDesk,
		desk.DeskID, desk.UserID, desk.Name, desk.Slug, desk.Position, desk.CreatedAt, desk.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*localDeskRepository.SaveDesk").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetDesks implements [LocalDeskRepository].
func (r *localDeskRepository) GetDesks(ctx context.Context, userID int64) ([]models.Desk, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getLocalDesks, userID)
	if err != nil {
		log.Err(err).Str("func", "*localDeskRepository.GetDesks").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	desks := make([]models.Desk, 0)
	for rows.Next() {
		var desk models.Desk
		if err = rows.Scan(&desk.DeskID, &desk.UserID, &desk.Name, &desk.Slug, &desk.Position, &desk.CreatedAt, &desk.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*localDeskRepository.GetDesks").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		desks = append(desks, desk)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return desks, nil
}

// GetDesk implements [LocalDeskRepository].
func (r *localDeskRepository) GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error) {
	log := logger.FromContext(ctx)

	var desk models.Desk
	row := r.db.QueryRowContext(ctx, getLocalDesk, deskID, userID)

	err := row.Scan(&desk.DeskID, &desk.UserID, &desk.Name, &desk.Slug, &desk.Position, &desk.CreatedAt, &desk.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Desk{}, ErrDeskNotFound
		}
		log.Err(err).Str("func", "*localDeskRepository.GetDesk").Msg("error: scanning error")
		return models.Desk{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return desk, nil
}

// DeleteDesk implements [LocalDeskRepository]. Cached items of the desk go
// with it via the schema's cascade.
func (r *localDeskRepository) DeleteDesk(ctx context.Context, deskID string, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteLocalDesk, deskID, userID); err != nil {
		log.Err(err).Str("func", "*localDeskRepository.DeleteDesk").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
