package service

import (
	"context"
	"fmt"

	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/store"
	"github.com/webuxmotion/mdmfd-com/internal/utils"
	"github.com/webuxmotion/mdmfd-com/internal/validators"
	"github.com/webuxmotion/mdmfd-com/models"
)

// deskService is the concrete implementation of DeskService.
type deskService struct {
	deskRepository store.DeskRepository
	validator      validators.Validator
	uuid           *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewDeskService constructs a new DeskService.
func NewDeskService(deskRepository store.DeskRepository, logger *logger.Logger) DeskService {
	return &deskService{
		deskRepository: deskRepository,
		validator:      validators.NewContentValidator(),
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateDesk creates a new desk for the user. The desk ID is generated
// server-side; the position is assigned by the repository (appended after the
// user's last desk). Name may be an "ENC:" blob, slug must stay plaintext.
//
// Returns ErrInvalidDataProvided when name or slug is empty, or a wrapped
// storage error (store.ErrSlugAlreadyExists on a slug collision).
func (d *deskService) CreateDesk(ctx context.Context, userID int64, name, slug string) (models.Desk, error) {
	log := logger.FromContext(ctx)

	desk := models.Desk{
		DeskID: d.uuid.Generate(),
		UserID: userID,
		Name:   name,
		Slug:   slug,
	}
	if err := d.validator.Validate(ctx, desk); err != nil {
		return models.Desk{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	createdDesk, err := d.deskRepository.CreateDesk(ctx, desk)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("desk creation ended with error")
		return models.Desk{}, fmt.Errorf("desk creation ended with error: %w", err)
	}

	return createdDesk, nil
}

// GetDesks returns all of the user's desks ordered by position.
func (d *deskService) GetDesks(ctx context.Context, userID int64) ([]models.Desk, error) {
	log := logger.FromContext(ctx)

	desks, err := d.deskRepository.GetDesks(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("desks retrieval ended with error")
		return nil, fmt.Errorf("desks retrieval ended with error: %w", err)
	}

	return desks, nil
}

// GetDesk returns a single desk owned by the user, or a wrapped
// store.ErrDeskNotFound.
func (d *deskService) GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error) {
	log := logger.FromContext(ctx)

	if deskID == "" {
		return models.Desk{}, ErrInvalidDataProvided
	}

	desk, err := d.deskRepository.GetDesk(ctx, deskID, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("desk retrieval ended with error")
		return models.Desk{}, fmt.Errorf("desk retrieval ended with error: %w", err)
	}

	return desk, nil
}

// UpdateDesk updates a desk's name, slug and position. Ownership is enforced
// by the repository's user-scoped UPDATE.
func (d *deskService) UpdateDesk(ctx context.Context, desk models.Desk) (models.Desk, error) {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, desk); err != nil {
		return models.Desk{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedDesk, err := d.deskRepository.UpdateDesk(ctx, desk)
	if err != nil {
		log.Err(err).Int64("id", desk.UserID).Msg("desk update ended with error")
		return models.Desk{}, fmt.Errorf("desk update ended with error: %w", err)
	}

	return updatedDesk, nil
}

// DeleteDesk removes a desk and, through the FK cascade, every item on it.
func (d *deskService) DeleteDesk(ctx context.Context, deskID string, userID int64) error {
	log := logger.FromContext(ctx)

	if deskID == "" {
		return ErrInvalidDataProvided
	}

	if err := d.deskRepository.DeleteDesk(ctx, deskID, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("desk deletion ended with error")
		return fmt.Errorf("desk deletion ended with error: %w", err)
	}

	return nil
}
