package models

import "time"

// PendingRecoveryKey is the short-lived server-side record that lets a user
// view a just-generated recovery code exactly once across a redirect or
// page reload.
//
// It contains the raw recovery code in plaintext and must be treated as a
// narrow, explicitly-expiring capability: deleted on acknowledgment, swept
// on expiry by the cleanup worker, and never included in logs.
type PendingRecoveryKey struct {
	// ID is the record UUID.
	ID string `json:"-"`

	// UserID is the account the code belongs to.
	UserID int64 `json:"-"`

	// RecoveryKey is the formatted one-time code as shown to the user.
	RecoveryKey string `json:"recovery_key"`

	// CreatedAt is when the code was generated.
	CreatedAt time.Time `json:"-"`

	// ExpiresAt is the hard deadline after which the code can no longer be
	// revealed (one hour after creation).
	ExpiresAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the PendingRecoveryKey model.
func (p PendingRecoveryKey) TableName() string {
	return "pending_recovery_keys"
}

// Expired reports whether the reveal window has closed at the given moment.
func (p PendingRecoveryKey) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
