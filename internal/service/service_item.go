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

// itemService is the concrete implementation of ItemService. Title, Content
// and URL values pass through untouched: whether they carry "ENC:" blobs or
// legacy plaintext is the client's business.
type itemService struct {
	itemRepository store.ItemRepository
	deskRepository store.DeskRepository
	validator      validators.Validator
	uuid           *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewItemService constructs a new ItemService.
func NewItemService(itemRepository store.ItemRepository, deskRepository store.DeskRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		deskRepository: deskRepository,
		validator:      validators.NewContentValidator(),
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateItem creates a new item on a desk the user owns. The item ID is
// generated server-side; the position is assigned by the repository (appended
// after the desk's last item).
//
// Returns ErrInvalidDataProvided when DeskID or Title is empty, or a wrapped
// storage error (store.ErrDeskNotFound when the desk does not exist or
// belongs to someone else).
func (i *itemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	// The item ID is not assigned yet, so validation is scoped to the fields
	// the caller controls.
	if err := i.validator.Validate(ctx, item, validators.FieldUserID, validators.FieldDeskID, validators.FieldTitle, validators.FieldPosition); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// Resolving the desk up front keeps cross-user desk IDs from turning into
	// an FK error with a foreign desk's ID in it.
	if _, err := i.deskRepository.GetDesk(ctx, item.DeskID, item.UserID); err != nil {
		log.Err(err).Int64("id", item.UserID).Msg("desk ownership check failed")
		return models.Item{}, fmt.Errorf("desk ownership check failed: %w", err)
	}

	item.ItemID = i.uuid.Generate()

	createdItem, err := i.itemRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Int64("id", item.UserID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// GetDeskItems returns the items of one desk ordered by position. The desk is
// resolved first so a foreign desk ID yields store.ErrDeskNotFound instead of
// an empty list.
func (i *itemService) GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	if deskID == "" {
		return nil, ErrInvalidDataProvided
	}

	if _, err := i.deskRepository.GetDesk(ctx, deskID, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("desk ownership check failed")
		return nil, fmt.Errorf("desk ownership check failed: %w", err)
	}

	items, err := i.itemRepository.GetDeskItems(ctx, deskID, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("items retrieval ended with error")
		return nil, fmt.Errorf("items retrieval ended with error: %w", err)
	}

	return items, nil
}

// GetItem returns a single item owned by the user, or a wrapped
// store.ErrItemNotFound.
func (i *itemService) GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	if itemID == "" {
		return models.Item{}, ErrInvalidDataProvided
	}

	item, err := i.itemRepository.GetItem(ctx, itemID, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("item retrieval ended with error")
		return models.Item{}, fmt.Errorf("item retrieval ended with error: %w", err)
	}

	return item, nil
}

// UpdateItem applies a partial update; only non-nil fields change. Ownership
// is enforced by the repository's user-scoped UPDATE.
func (i *itemService) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := i.validator.Validate(ctx, update); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedItem, err := i.itemRepository.UpdateItem(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", update.UserID).Msg("item update ended with error")
		return models.Item{}, fmt.Errorf("item update ended with error: %w", err)
	}

	return updatedItem, nil
}

// DeleteItem removes a single item owned by the user.
func (i *itemService) DeleteItem(ctx context.Context, itemID string, userID int64) error {
	log := logger.FromContext(ctx)

	if itemID == "" {
		return ErrInvalidDataProvided
	}

	if err := i.itemRepository.DeleteItem(ctx, itemID, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("item deletion ended with error")
		return fmt.Errorf("item deletion ended with error: %w", err)
	}

	return nil
}

// ReorderItems rewrites the positions of the given items within one desk in a
// single transaction; the order of itemIDs defines the new positions.
func (i *itemService) ReorderItems(ctx context.Context, deskID string, userID int64, itemIDs []string) error {
	log := logger.FromContext(ctx)

	if err := i.validator.Validate(ctx, models.ReorderItemsRequest{DeskID: deskID, ItemIDs: itemIDs}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := i.deskRepository.GetDesk(ctx, deskID, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("desk ownership check failed")
		return fmt.Errorf("desk ownership check failed: %w", err)
	}

	if err := i.itemRepository.ReorderItems(ctx, deskID, userID, itemIDs); err != nil {
		log.Err(err).Int64("id", userID).Msg("items reordering ended with error")
		return fmt.Errorf("items reordering ended with error: %w", err)
	}

	return nil
}

// MoveItem relocates an item to another desk at the given position. The
// target desk is resolved first so moving onto a foreign desk fails with
// store.ErrDeskNotFound before anything changes.
func (i *itemService) MoveItem(ctx context.Context, itemID, toDeskID string, position int, userID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := i.validator.Validate(ctx, models.MoveItemRequest{ItemID: itemID, ToDeskID: toDeskID, Position: position}); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := i.deskRepository.GetDesk(ctx, toDeskID, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("desk ownership check failed")
		return models.Item{}, fmt.Errorf("desk ownership check failed: %w", err)
	}

	movedItem, err := i.itemRepository.MoveItem(ctx, itemID, toDeskID, position, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("item move ended with error")
		return models.Item{}, fmt.Errorf("item move ended with error: %w", err)
	}

	return movedItem, nil
}
