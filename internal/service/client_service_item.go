package service

import (
	"context"

	"github.com/webuxmotion/mdmfd-com/internal/adapter"
	"github.com/webuxmotion/mdmfd-com/internal/crypto"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/store"
	"github.com/webuxmotion/mdmfd-com/models"
)

type clientItemService struct {
	adapter adapter.ServerAdapter
	cache   store.LocalItemRepository
	session *crypto.UnlockSession
	logger  *logger.Logger
}

// NewClientItemService constructs a [ClientItemService]. Server responses
// refresh the cache; reads fall back to it when the server is unreachable.
func NewClientItemService(serverAdapter adapter.ServerAdapter, cache store.LocalItemRepository, session *crypto.UnlockSession, logger *logger.Logger) ClientItemService {
	return &clientItemService{
		adapter: serverAdapter,
		cache:   cache,
		session: session,
		logger:  logger,
	}
}

// CreateItem implements [ClientItemService]. Title and content are encrypted
// before they leave the process; the URL stays plaintext so bookmarks remain
// clickable without an unlock.
func (s *clientItemService) CreateItem(ctx context.Context, userID int64, deskID, title, content, url string) (models.Item, error) {
	cipherTitle, err := s.session.EncryptField(title)
	if err != nil {
		return models.Item{}, err
	}
	cipherContent, err := s.session.EncryptField(content)
	if err != nil {
		return models.Item{}, err
	}

	created, err := s.adapter.CreateItem(ctx, models.Item{
		DeskID:  deskID,
		Title:   cipherTitle,
		Content: cipherContent,
		URL:     url,
	})
	if err != nil {
		return models.Item{}, mapAdapterError(err)
	}

	created.UserID = userID
	if err := s.cache.SaveItem(ctx, created); err != nil {
		s.logger.Warn().Err(err).Msg("could not cache created item")
	}

	return s.decryptItem(created), nil
}

// GetDeskItems implements [ClientItemService]. A transport failure falls
// back to the cached list; server error responses propagate.
func (s *clientItemService) GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error) {
	items, err := s.adapter.GetDeskItems(ctx, deskID)
	if err != nil {
		if isServerResponse(err) {
			return nil, mapAdapterError(err)
		}

		s.logger.Warn().Err(err).Msg("server unreachable; serving items from cache")
		items, err = s.cache.GetDeskItems(ctx, deskID, userID)
		if err != nil {
			return nil, err
		}
		return s.decryptItems(items), nil
	}

	for i := range items {
		items[i].UserID = userID
	}
	if err := s.cache.ReplaceDeskItems(ctx, deskID, userID, items...); err != nil {
		s.logger.Warn().Err(err).Msg("could not refresh item cache")
	}

	return s.decryptItems(items), nil
}

// GetItem implements [ClientItemService].
func (s *clientItemService) GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error) {
	item, err := s.adapter.GetItem(ctx, itemID)
	if err != nil {
		if isServerResponse(err) {
			return models.Item{}, mapAdapterError(err)
		}

		s.logger.Warn().Err(err).Msg("server unreachable; serving item from cache")
		item, err = s.cache.GetItem(ctx, itemID, userID)
		if err != nil {
			return models.Item{}, err
		}
		return s.decryptItem(item), nil
	}

	item.UserID = userID
	if err := s.cache.SaveItem(ctx, item); err != nil {
		s.logger.Warn().Err(err).Msg("could not cache item")
	}

	return s.decryptItem(item), nil
}

// UpdateItem implements [ClientItemService]. Only non-nil fields of update
// change; title and content are encrypted in place before upload.
func (s *clientItemService) UpdateItem(ctx context.Context, userID int64, update models.ItemUpdate) (models.Item, error) {
	if update.Title != nil {
		cipherTitle, err := s.session.EncryptField(*update.Title)
		if err != nil {
			return models.Item{}, err
		}
		update.Title = &cipherTitle
	}
	if update.Content != nil {
		cipherContent, err := s.session.EncryptField(*update.Content)
		if err != nil {
			return models.Item{}, err
		}
		update.Content = &cipherContent
	}

	updated, err := s.adapter.UpdateItem(ctx, update)
	if err != nil {
		return models.Item{}, mapAdapterError(err)
	}

	updated.UserID = userID
	if err := s.cache.SaveItem(ctx, updated); err != nil {
		s.logger.Warn().Err(err).Msg("could not cache updated item")
	}

	return s.decryptItem(updated), nil
}

// DeleteItem implements [ClientItemService].
func (s *clientItemService) DeleteItem(ctx context.Context, itemID string, userID int64) error {
	if err := s.adapter.DeleteItem(ctx, itemID); err != nil {
		return mapAdapterError(err)
	}

	if err := s.cache.DeleteItem(ctx, itemID, userID); err != nil {
		s.logger.Warn().Err(err).Msg("could not drop item from cache")
	}

	return nil
}

// ReorderItems implements [ClientItemService]. Cached positions are patched
// best-effort after the server accepts the new order.
func (s *clientItemService) ReorderItems(ctx context.Context, userID int64, deskID string, itemIDs []string) error {
	err := s.adapter.ReorderItems(ctx, models.ReorderItemsRequest{DeskID: deskID, ItemIDs: itemIDs})
	if err != nil {
		return mapAdapterError(err)
	}

	for position, itemID := range itemIDs {
		item, err := s.cache.GetItem(ctx, itemID, userID)
		if err != nil {
			continue
		}
		item.Position = position
		if err := s.cache.SaveItem(ctx, item); err != nil {
			s.logger.Warn().Err(err).Str("item_id", itemID).Msg("could not reposition cached item")
		}
	}

	return nil
}

// MoveItem implements [ClientItemService].
func (s *clientItemService) MoveItem(ctx context.Context, userID int64, itemID, toDeskID string, position int) (models.Item, error) {
	moved, err := s.adapter.MoveItem(ctx, models.MoveItemRequest{ItemID: itemID, ToDeskID: toDeskID, Position: position})
	if err != nil {
		return models.Item{}, mapAdapterError(err)
	}

	moved.UserID = userID
	if err := s.cache.SaveItem(ctx, moved); err != nil {
		s.logger.Warn().Err(err).Msg("could not cache moved item")
	}

	return s.decryptItem(moved), nil
}

// decryptItem renders an item for display. When decryption fails the stored
// value passes through so the item still lists instead of vanishing.
func (s *clientItemService) decryptItem(item models.Item) models.Item {
	title, err := s.session.DecryptField(item.Title)
	if err != nil {
		s.logger.Warn().Err(err).Str("item_id", item.ItemID).Msg("could not decrypt item title")
	}
	item.Title = title

	content, err := s.session.DecryptField(item.Content)
	if err != nil {
		s.logger.Warn().Err(err).Str("item_id", item.ItemID).Msg("could not decrypt item content")
	}
	item.Content = content

	return item
}

func (s *clientItemService) decryptItems(items []models.Item) []models.Item {
	for i := range items {
		items[i] = s.decryptItem(items[i])
	}
	return items
}
