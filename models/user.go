package models

import "time"

// User represents an account entity used for authentication, authorization
// and envelope-encryption key storage. Sensitive fields must never be
// exposed outside trusted boundaries.
//
// The server stores the master key only in wrapped form: once under the
// user's password, optionally once more under a recovery code. The raw
// master key never appears in this struct.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique public handle of the user.
	Username string `json:"username"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name"`

	// Email is the unique address used for login and recovery lookups.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the login password.
	// Never plaintext, never exposed via JSON.
	PasswordHash string `json:"-"`

	// EncryptedMasterKey is the password-wrapped master key envelope
	// ("ENC:"-prefixed blob). Empty for accounts that have not set up
	// encryption yet. Replaced on every password change.
	EncryptedMasterKey string `json:"encrypted_master_key,omitempty"`

	// RecoveryKeyHash is hex(SHA-256) of the normalized recovery code.
	// The code itself is never persisted. Replaced exactly when
	// RecoveryEncryptedMasterKey is replaced.
	RecoveryKeyHash string `json:"-"`

	// RecoveryEncryptedMasterKey is the recovery-wrapped master key
	// envelope. Untouched by ordinary password changes.
	RecoveryEncryptedMasterKey string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasEncryption reports whether the account has a password-wrapped master
// key envelope.
func (u User) HasEncryption() bool {
	return u.EncryptedMasterKey != ""
}

// HasRecovery reports whether the account can run the recovery flow: both
// the recovery hash and the recovery-wrapped envelope must be present.
func (u User) HasRecovery() bool {
	return u.RecoveryKeyHash != "" && u.RecoveryEncryptedMasterKey != ""
}
