package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/models"
)

// pendingRecoveryRepository is the PostgreSQL-backed implementation of
// [PendingRecoveryRepository]. It stores plaintext recovery codes between
// generation and their one-time reveal; the sweeper worker and the expires_at
// bound keep that window short.
type pendingRecoveryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPendingRecoveryRepository constructs a [PendingRecoveryRepository]
// backed by the provided database connection and logger.
func NewPendingRecoveryRepository(db *DB, logger *logger.Logger) PendingRecoveryRepository {
	logger.Debug().Msg("creating pending recovery key repository")
	return &pendingRecoveryRepository{
		db:     db,
		logger: logger,
	}
}

// Replace discards any previous pending code for the user and inserts the
// new one in a single transaction, so a user never has two revealable codes.
func (r *pendingRecoveryRepository) Replace(ctx context.Context, key models.PendingRecoveryKey) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*pendingRecoveryRepository.Replace").Msg("error: beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deletePendingKeysByUser, key.UserID); err != nil {
		log.Err(err).Str("func", "*pendingRecoveryRepository.Replace").Msg("error: deleting previous keys")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, insertPendingKey, key.ID, key.UserID, key.RecoveryKey, key.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*pendingRecoveryRepository.Replace").Msg("error: inserting pending key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*pendingRecoveryRepository.Replace").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// FindValid returns the user's pending code if one exists and has not expired
// at the given instant; otherwise [ErrPendingKeyNotFound].
func (r *pendingRecoveryRepository) FindValid(ctx context.Context, userID int64, now time.Time) (models.PendingRecoveryKey, error) {
	log := logger.FromContext(ctx)

	var key models.PendingRecoveryKey
	row := r.db.QueryRowContext(ctx, findValidPendingKey, userID, now)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*pendingRecoveryRepository.FindValid").Msg("error: row is nil")
		return models.PendingRecoveryKey{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&key.ID, &key.UserID, &key.RecoveryKey, &key.CreatedAt, &key.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PendingRecoveryKey{}, ErrPendingKeyNotFound
		}
		log.Err(err).Str("func", "*pendingRecoveryRepository.FindValid").Msg("error: scanning error")
		return models.PendingRecoveryKey{}, err
	}

	return key, nil
}

// DeleteByUser removes the user's pending code, typically after the client
// acknowledges that the code was shown and saved.
func (r *pendingRecoveryRepository) DeleteByUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deletePendingKeysByUser, userID); err != nil {
		log.Err(err).Str("func", "*pendingRecoveryRepository.DeleteByUser").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteExpired removes all codes expired at the given instant and reports
// how many rows were deleted. Called periodically by the sweeper worker.
// A transient failure (connection loss, deadlock) is retried once; the
// sweeper's next tick covers anything beyond that.
func (r *pendingRecoveryRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredPendingKeys, now)
	if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*pendingRecoveryRepository.DeleteExpired").Msg("transient delete failure, retrying once")
		result, err = r.db.ExecContext(ctx, deleteExpiredPendingKeys, now)
	}
	if err != nil {
		log.Err(err).Str("func", "*pendingRecoveryRepository.DeleteExpired").Msg("error: executing delete")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
