package service

import (
	"context"

	"github.com/webuxmotion/mdmfd-com/models"
)

// ClientAuthService is the client-side contract for account management and
// the local unlock session. Login unwraps the master key envelope locally;
// the raw master key never leaves the process.
type ClientAuthService interface {
	// Register creates an account on the server and stores the returned
	// bearer token in the adapter.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates against the server, stores the bearer token, and
	// unlocks the field-cipher session with the envelope from the response.
	// An account without encryption set up logs in with the session left
	// locked. Returns the authenticated user's ID.
	Login(ctx context.Context, email, password string) (int64, error)

	// Logout scrubs the in-memory master key and drops the bearer token.
	Logout()

	// IsUnlocked reports whether the field-cipher session holds a master key.
	IsUnlocked() bool

	// SetupEncryption provisions key material on the server and unlocks the
	// session with the fresh envelope. The returned response carries the
	// recovery code for its one-time display.
	SetupEncryption(ctx context.Context, password string) (models.SetupEncryptionResponse, error)

	// ChangePassword rotates the password on the server and re-unlocks the
	// session with the re-wrapped envelope.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error

	// CheckRecovery reports whether the account has recovery material.
	CheckRecovery(ctx context.Context, email string) (bool, error)

	// ResetPassword resets the password using the recovery code.
	ResetPassword(ctx context.Context, email, recoveryKey, newPassword string) error

	// FetchPendingRecoveryKey returns the recovery code staged for one-time
	// reveal, or found=false when nothing is pending.
	FetchPendingRecoveryKey(ctx context.Context) (code string, found bool, err error)

	// AcknowledgeRecoveryKey confirms the revealed code was saved, deleting
	// the pending record on the server.
	AcknowledgeRecoveryKey(ctx context.Context) error
}

// ClientDeskService is the client-side contract for desk CRUD. Names are
// encrypted before upload while the session is unlocked and decrypted on
// read; server responses refresh the local cache, which answers reads when
// the server is unreachable.
type ClientDeskService interface {
	CreateDesk(ctx context.Context, userID int64, name, slug string) (models.Desk, error)
	GetDesks(ctx context.Context, userID int64) ([]models.Desk, error)
	GetDesk(ctx context.Context, deskID string, userID int64) (models.Desk, error)
	UpdateDesk(ctx context.Context, userID int64, deskID, name, slug string) (models.Desk, error)
	DeleteDesk(ctx context.Context, deskID string, userID int64) error
}

// ClientItemService is the client-side contract for item CRUD plus ordering.
// Titles and contents are encrypted before upload while the session is
// unlocked and decrypted on read.
type ClientItemService interface {
	CreateItem(ctx context.Context, userID int64, deskID, title, content, url string) (models.Item, error)
	GetDeskItems(ctx context.Context, deskID string, userID int64) ([]models.Item, error)
	GetItem(ctx context.Context, itemID string, userID int64) (models.Item, error)
	UpdateItem(ctx context.Context, userID int64, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, itemID string, userID int64) error
	ReorderItems(ctx context.Context, userID int64, deskID string, itemIDs []string) error
	MoveItem(ctx context.Context, userID int64, itemID, toDeskID string, position int) (models.Item, error)
}

// ClientAppInfoService reports version information of the client binary and
// the server it talks to.
type ClientAppInfoService interface {
	// GetServerVersion fetches the server's build version string.
	GetServerVersion(ctx context.Context) (string, error)
}
