package models

// LoginResponse carries the authenticated user together with the
// password-wrapped master key envelope, which the client needs for local
// unlock. The raw master key is never part of any response.
type LoginResponse struct {
	User User `json:"user"`

	// EncryptedMasterKey duplicates User.EncryptedMasterKey for clients
	// that only want the envelope.
	EncryptedMasterKey string `json:"encrypted_master_key"`
}

// SetupEncryptionResponse is returned by POST /api/auth/setup-encryption.
type SetupEncryptionResponse struct {
	Success bool `json:"success"`

	// EncryptedMasterKey is the password-wrapped envelope just created.
	EncryptedMasterKey string `json:"encrypted_master_key"`

	// RecoveryKey is the formatted one-time code. Shown to the user
	// exactly once; only its hash is persisted.
	RecoveryKey string `json:"recovery_key"`
}

// ChangePasswordResponse is returned by POST /api/auth/change-password.
type ChangePasswordResponse struct {
	Success bool `json:"success"`

	// EncryptedMasterKey is the envelope re-wrapped under the new password.
	EncryptedMasterKey string `json:"encrypted_master_key"`
}

// CheckRecoveryResponse is returned by POST /api/auth/check-recovery.
type CheckRecoveryResponse struct {
	HasRecoveryKey bool `json:"has_recovery_key"`
}

// ResetPasswordResponse is returned by POST /api/auth/reset-password.
type ResetPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// PendingRecoveryKeyResponse is returned by GET /api/auth/pending-recovery-key.
// RecoveryKey is nil when no unexpired reveal record exists.
type PendingRecoveryKeyResponse struct {
	RecoveryKey *string `json:"recovery_key"`
}
