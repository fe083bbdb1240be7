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

// deskRepository is the PostgreSQL-backed implementation of [DeskRepository].
type deskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeskRepository constructs a [DeskRepository] backed by the provided
// database connection and logger.
func NewDeskRepository(db *DB, logger *logger.Logger) DeskRepository {
	logger.Debug().Msg("creating desk repository")
	return &deskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDesk persists a new desk at the end of the user's desk list and
// returns the record with server-assigned Position and timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSlugAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *deskRepository) CreateDesk(ctx context.Context, desk models.Desk) (models.Desk, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDesk, desk.DeskID, desk.UserID, desk.Name, desk.Slug)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deskRepository.CreateDesk").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Desk{}, ErrSlugAlreadyExists
		default:
			return models.Desk{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanDesk(row, &desk); err != nil {
		log.Err(err).Str("func", "*deskRepository.CreateDesk").Msg("error: scanning error")
		return models.Desk{}, err
	}

	return desk, nil
}

// GetDesks returns all desks of the user in display order.
func (r *deskRepository) GetDesks(ctx context.Context, userID int64) ([]models.Desk, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getDesksByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*deskRepository.GetDesks").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	desks := make([]models.Desk, 0)
	for rows.Next() {
		var desk models.Desk
		if err := rows.Scan(&desk.DeskID, &desk.UserID, &desk.Name, &desk.Slug, &desk.Position, &desk.CreatedAt, &desk.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*deskRepository.GetDesks").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		desks = append(desks, desk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return desks, nil
}

// GetDesk returns one desk owned by the user, or [ErrDeskNotFound].
func (r *deskRepository) GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error) {
	log := logger.FromContext(ctx)

	var desk models.Desk
	row := r.db.QueryRowContext(ctx, getDeskByID, deskID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deskRepository.GetDesk").Msg("error: row is nil")
		return models.Desk{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanDesk(row, &desk); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Desk{}, ErrDeskNotFound
		}
		log.Err(err).Str("func", "*deskRepository.GetDesk").Msg("error: scanning error")
		return models.Desk{}, err
	}

	return desk, nil
}

// UpdateDesk rewrites the desk's name, slug and position and returns the
// updated record.
//
// Error handling:
//   - No matching row → [ErrDeskNotFound].
//   - PostgreSQL unique_violation (23505) → [ErrSlugAlreadyExists].
func (r *deskRepository) UpdateDesk(ctx context.Context, desk models.Desk) (models.Desk, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateDesk, desk.Name, desk.Slug, desk.Position, desk.DeskID, desk.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deskRepository.UpdateDesk").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Desk{}, ErrSlugAlreadyExists
		default:
			return models.Desk{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var updated models.Desk
	if err := scanDesk(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Desk{}, ErrDeskNotFound
		}
		log.Err(err).Str("func", "*deskRepository.UpdateDesk").Msg("error: scanning error")
		return models.Desk{}, err
	}

	return updated, nil
}

// DeleteDesk removes the desk and, via ON DELETE CASCADE, all its items.
// Returns [ErrDeskNotFound] when the desk does not exist or belongs to
// another user.
func (r *deskRepository) DeleteDesk(ctx context.Context, deskID string, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDesk, deskID, userID)
	if err != nil {
		log.Err(err).Str("func", "*deskRepository.DeleteDesk").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrDeskNotFound
	}

	return nil
}

func scanDesk(row *sql.Row, desk *models.Desk) error {
	return row.Scan(
		&desk.DeskID,
		&desk.UserID,
		&desk.Name,
		&desk.Slug,
		&desk.Position,
		&desk.CreatedAt,
		&desk.UpdatedAt,
	)
}
