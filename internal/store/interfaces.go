package store

import (
	"context"
	"time"

	"github.com/webuxmotion/mdmfd-com/models"
)

// UserRepository persists user accounts together with their key material:
// the password-wrapped master key envelope, the recovery key hash and the
// recovery-wrapped envelope.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateEncryptionKeys stores the full key material set in one statement,
	// so a partially provisioned account is never observable.
	UpdateEncryptionKeys(ctx context.Context, userID int64, encryptedMasterKey, recoveryKeyHash, recoveryEncryptedMasterKey string) error

	// UpdatePasswordAndEnvelope atomically replaces the login password hash
	// and the password-wrapped master key envelope.
	UpdatePasswordAndEnvelope(ctx context.Context, userID int64, passwordHash, encryptedMasterKey string) error

	// UpdateRecoveryKeys replaces only the recovery key material, leaving the
	// password envelope untouched.
	UpdateRecoveryKeys(ctx context.Context, userID int64, recoveryKeyHash, recoveryEncryptedMasterKey string) error
}

// DeskRepository persists desks, the ordered containers items live on.
type DeskRepository interface {
	CreateDesk(ctx context.Context, desk models.Desk) (models.Desk, error)
	GetDesks(ctx context.Context, userID int64) ([]models.Desk, error)
	GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error)
	UpdateDesk(ctx context.Context, desk models.Desk) (models.Desk, error)
	DeleteDesk(ctx context.Context, deskID string, userID int64) error
}

// ItemRepository persists bookmark/note items. Title and Content pass through
// opaque: the repository never inspects whether a value is encrypted.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error)
	GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error)
	UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, itemID string, userID int64) error

	// ReorderItems rewrites positions of the given items within one desk in a
	// single transaction; itemIDs order defines the new positions.
	ReorderItems(ctx context.Context, deskID string, userID int64, itemIDs []string) error

	// MoveItem relocates an item to another desk at the given position.
	MoveItem(ctx context.Context, itemID, toDeskID string, position int, userID int64) (models.Item, error)
}

// PendingRecoveryRepository stores recovery codes awaiting their one-time
// reveal to the user. A user has at most one pending code at a time.
type PendingRecoveryRepository interface {
	// Replace discards any previous pending code for the user and stores the
	// new one in a single transaction.
	Replace(ctx context.Context, key models.PendingRecoveryKey) error

	// FindValid returns the user's pending code if one exists and has not
	// expired at the given instant; otherwise ErrPendingKeyNotFound.
	FindValid(ctx context.Context, userID int64, now time.Time) (models.PendingRecoveryKey, error)

	DeleteByUser(ctx context.Context, userID int64) error

	// DeleteExpired removes all codes expired at the given instant and
	// reports how many rows were deleted.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
