package service

import (
	"context"

	"github.com/webuxmotion/mdmfd-com/models"
)

// AuthService handles account registration, credential verification and JWT
// token lifecycle. Login also performs lazy key provisioning: accounts
// created before envelope encryption existed get their key material generated
// on first successful login.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EncryptionService manages per-user key material: the password-wrapped
// master key envelope, the recovery code and the pending one-time reveal.
type EncryptionService interface {
	// SetupEncryption provisions a master key for an account that has none.
	// Returns the password-wrapped envelope and the plaintext recovery code;
	// the code is shown to the caller exactly once and only its hash is kept.
	SetupEncryption(ctx context.Context, userID int64, password string) (models.SetupEncryptionResponse, error)

	// ChangePassword verifies the current password, rewraps the master key
	// envelope under the new password and replaces both the password hash and
	// the envelope atomically.
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (models.ChangePasswordResponse, error)

	// CheckRecovery reports whether the account identified by email has a
	// recovery key configured.
	CheckRecovery(ctx context.Context, email string) (bool, error)

	// ResetPassword verifies the recovery code, recovers the master key from
	// the recovery envelope, wraps it under the new password and replaces the
	// password hash and the envelope atomically.
	ResetPassword(ctx context.Context, email, recoveryKey, newPassword string) error

	// GetPendingRecoveryKey returns the unexpired recovery code awaiting its
	// one-time reveal, or store.ErrPendingKeyNotFound.
	GetPendingRecoveryKey(ctx context.Context, userID int64) (models.PendingRecoveryKey, error)

	// AcknowledgeRecoveryKey discards the pending code after the client has
	// shown it to the user.
	AcknowledgeRecoveryKey(ctx context.Context, userID int64) error
}

// DeskService manages desks, the ordered containers items live on.
type DeskService interface {
	CreateDesk(ctx context.Context, userID int64, name, slug string) (models.Desk, error)
	GetDesks(ctx context.Context, userID int64) ([]models.Desk, error)
	GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error)
	UpdateDesk(ctx context.Context, desk models.Desk) (models.Desk, error)
	DeleteDesk(ctx context.Context, deskID string, userID int64) error
}

// ItemService manages bookmark/note items. Field values pass through opaque;
// encryption and decryption happen on the client.
type ItemService interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error)
	GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error)
	UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, itemID string, userID int64) error
	ReorderItems(ctx context.Context, deskID string, userID int64, itemIDs []string) error
	MoveItem(ctx context.Context, itemID, toDeskID string, position int, userID int64) (models.Item, error)
}

// AppInfoService exposes static application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
