package service

import (
	"context"

	"github.com/webuxmotion/mdmfd-com/internal/adapter"
	"github.com/webuxmotion/mdmfd-com/internal/crypto"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/store"
	"github.com/webuxmotion/mdmfd-com/models"
)

type clientDeskService struct {
	adapter adapter.ServerAdapter
	cache   store.LocalDeskRepository
	session *crypto.UnlockSession
	logger  *logger.Logger
}

// NewClientDeskService constructs a [ClientDeskService]. Server responses
// refresh cache; reads fall back to it when the server is unreachable.
func NewClientDeskService(serverAdapter adapter.ServerAdapter, cache store.LocalDeskRepository, session *crypto.UnlockSession, logger *logger.Logger) ClientDeskService {
	return &clientDeskService{
		adapter: serverAdapter,
		cache:   cache,
		session: session,
		logger:  logger,
	}
}

// CreateDesk implements [ClientDeskService]. The name is encrypted before it
// leaves the process; the cache stores the encrypted form.
func (s *clientDeskService) CreateDesk(ctx context.Context, userID int64, name, slug string) (models.Desk, error) {
	cipherName, err := s.session.EncryptField(name)
	if err != nil {
		return models.Desk{}, err
	}

	created, err := s.adapter.CreateDesk(ctx, models.Desk{Name: cipherName, Slug: slug})
	if err != nil {
		return models.Desk{}, mapAdapterError(err)
	}

	created.UserID = userID
	if err := s.cache.SaveDesk(ctx, created); err != nil {
		s.logger.Warn().Err(err).Msg("could not cache created desk")
	}

	return s.decryptDesk(created), nil
}

// GetDesks implements [ClientDeskService]. A transport failure falls back to
// the cached list; server error responses propagate.
func (s *clientDeskService) GetDesks(ctx context.Context, userID int64) ([]models.Desk, error) {
	desks, err := s.adapter.GetDesks(ctx)
	if err != nil {
		if isServerResponse(err) {
			return nil, mapAdapterError(err)
		}

		s.logger.Warn().Err(err).Msg("server unreachable; serving desks from cache")
		desks, err = s.cache.GetDesks(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.decryptDesks(desks), nil
	}

	for i := range desks {
		desks[i].UserID = userID
	}
	if err := s.cache.ReplaceDesks(ctx, userID, desks...); err != nil {
		s.logger.Warn().Err(err).Msg("could not refresh desk cache")
	}

	return s.decryptDesks(desks), nil
}

// GetDesk implements [ClientDeskService].
func (s *clientDeskService) GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error) {
	desk, err := s.adapter.GetDesk(ctx, deskID)
	if err != nil {
		if isServerResponse(err) {
			return models.Desk{}, mapAdapterError(err)
		}

		s.logger.Warn().Err(err).Msg("server unreachable; serving desk from cache")
		desk, err = s.cache.GetDesk(ctx, deskID, userID)
		if err != nil {
			return models.Desk{}, err
		}
		return s.decryptDesk(desk), nil
	}

	desk.UserID = userID
	if err := s.cache.SaveDesk(ctx, desk); err != nil {
		s.logger.Warn().Err(err).Msg("could not cache desk")
	}

	return s.decryptDesk(desk), nil
}

// UpdateDesk implements [ClientDeskService].
func (s *clientDeskService) UpdateDesk(ctx context.Context, userID int64, deskID, name, slug string) (models.Desk, error) {
	cipherName, err := s.session.EncryptField(name)
	if err != nil {
		return models.Desk{}, err
	}

	updated, err := s.adapter.UpdateDesk(ctx, models.Desk{DeskID: deskID, Name: cipherName, Slug: slug})
	if err != nil {
		return models.Desk{}, mapAdapterError(err)
	}

	updated.UserID = userID
	if err := s.cache.SaveDesk(ctx, updated); err != nil {
		s.logger.Warn().Err(err).Msg("could not cache updated desk")
	}

	return s.decryptDesk(updated), nil
}

// DeleteDesk implements [ClientDeskService].
func (s *clientDeskService) DeleteDesk(ctx context.Context, deskID string, userID int64) error {
	if err := s.adapter.DeleteDesk(ctx, deskID); err != nil {
		return mapAdapterError(err)
	}

	if err := s.cache.DeleteDesk(ctx, deskID, userID); err != nil {
		s.logger.Warn().Err(err).Msg("could not drop desk from cache")
	}

	return nil
}

// decryptDesk renders a desk for display. When decryption fails the stored
// value passes through so the desk still lists instead of vanishing.
func (s *clientDeskService) decryptDesk(desk models.Desk) models.Desk {
	name, err := s.session.DecryptField(desk.Name)
	if err != nil {
		s.logger.Warn().Err(err).Str("desk_id", desk.DeskID).Msg("could not decrypt desk name")
	}
	desk.Name = name
	return desk
}

func (s *clientDeskService) decryptDesks(desks []models.Desk) []models.Desk {
	for i := range desks {
		desks[i] = s.decryptDesk(desks[i])
	}
	return desks
}
