package models

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SetupEncryptionRequest is the payload of POST /api/auth/setup-encryption.
// The password is used as KDF input for wrapping the fresh master key; the
// account password hash is set from it at the same time (OAuth-style
// accounts may not have had one).
type SetupEncryptionRequest struct {
	Password string `json:"password"`
}

// ChangePasswordRequest is the payload of POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CheckRecoveryRequest is the payload of POST /api/auth/check-recovery.
type CheckRecoveryRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the payload of POST /api/auth/reset-password.
// RecoveryKey accepts any formatting of the code (case, dashes, spaces).
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	RecoveryKey string `json:"recovery_key"`
	NewPassword string `json:"new_password"`
}

// ReorderItemsRequest is the payload of POST /api/desks/reorder-items.
// ItemIDs lists every item of the desk in its new display order.
type ReorderItemsRequest struct {
	DeskID  string   `json:"desk_id"`
	ItemIDs []string `json:"item_ids"`
}

// MoveItemRequest is the payload of POST /api/desks/move-item.
type MoveItemRequest struct {
	ItemID   string `json:"item_id"`
	ToDeskID string `json:"to_desk_id"`
	Position int    `json:"position"`
}
