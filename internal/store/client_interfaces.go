package store

import (
	"context"

	"github.com/webuxmotion/mdmfd-com/models"
)

// LocalDeskRepository is the client-side cache of the user's desks. Name
// fields are stored exactly as received from the server, so encrypted
// "ENC:" blobs stay encrypted at rest on the device.
type LocalDeskRepository interface {
	// ReplaceDesks drops the cached desk list of the user and stores the
	// given desks in one transaction.
	ReplaceDesks(ctx context.Context, userID int64, desks ...models.Desk) error
	// SaveDesk inserts or updates a single cached desk.
	SaveDesk(ctx context.Context, desk models.Desk) error
	// GetDesks returns the cached desks of the user in display order.
	GetDesks(ctx context.Context, userID int64) ([]models.Desk, error)
	// GetDesk returns one cached desk or [ErrDeskNotFound].
	GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error)
	// DeleteDesk removes a cached desk and its cached items.
	DeleteDesk(ctx context.Context, deskID string, userID int64) error
}

// LocalItemRepository is the client-side cache of desk items. Title and
// Content are stored exactly as received from the server.
type LocalItemRepository interface {
	// ReplaceDeskItems drops the cached items of one desk and stores the
	// given items in one transaction.
	ReplaceDeskItems(ctx context.Context, deskID string, userID int64, items ...models.Item) error
	// SaveItem inserts or updates a single cached item.
	SaveItem(ctx context.Context, item models.Item) error
	// GetDeskItems returns the cached items of one desk in display order.
	GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error)
	// GetItem returns one cached item or [ErrItemNotFound].
	GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error)
	// DeleteItem removes a cached item.
	DeleteItem(ctx context.Context, itemID string, userID int64) error
}
