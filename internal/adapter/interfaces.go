// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the mdmfd server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/webuxmotion/mdmfd-com/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the mdmfd
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server. On success it
	// extracts the bearer token from the Authorization response header,
	// stores it via SetToken, and returns the created user record.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates with email and password. On success it stores the
	// bearer token via SetToken and returns the login response, including
	// the password-wrapped master key envelope the client unwraps locally.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// SetupEncryption asks the server to provision envelope-encryption key
	// material for the authenticated account. The response carries the new
	// envelope and the plaintext recovery code, shown to the user exactly
	// once.
	SetupEncryption(ctx context.Context, req models.SetupEncryptionRequest) (models.SetupEncryptionResponse, error)

	// ChangePassword rotates the login password and re-wraps the master key
	// envelope under the new password.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.ChangePasswordResponse, error)

	// CheckRecovery reports whether the account behind req.Email has
	// recovery key material on file. Unauthenticated.
	CheckRecovery(ctx context.Context, req models.CheckRecoveryRequest) (models.CheckRecoveryResponse, error)

	// ResetPassword resets the login password using the recovery code.
	// Unauthenticated; the server answers identically for unknown emails
	// and wrong codes.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.ResetPasswordResponse, error)

	// GetPendingRecoveryKey fetches the one-time recovery code reveal staged
	// during login provisioning. RecoveryKey is nil when nothing is pending.
	GetPendingRecoveryKey(ctx context.Context) (models.PendingRecoveryKeyResponse, error)

	// AcknowledgeRecoveryKey tells the server the user has saved the
	// revealed recovery code, deleting the pending record.
	AcknowledgeRecoveryKey(ctx context.Context) error

	// CreateDesk creates a desk owned by the authenticated user and returns
	// the stored record with its assigned position.
	CreateDesk(ctx context.Context, desk models.Desk) (models.Desk, error)

	// GetDesks lists the authenticated user's desks ordered by position.
	GetDesks(ctx context.Context) ([]models.Desk, error)

	// GetDesk fetches a single desk by ID.
	GetDesk(ctx context.Context, deskID string) (models.Desk, error)

	// UpdateDesk replaces a desk's name and slug and returns the stored
	// record.
	UpdateDesk(ctx context.Context, desk models.Desk) (models.Desk, error)

	// DeleteDesk deletes a desk and all of its items.
	DeleteDesk(ctx context.Context, deskID string) error

	// CreateItem creates an item on a desk and returns the stored record.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// GetDeskItems lists the items of one desk ordered by position.
	GetDeskItems(ctx context.Context, deskID string) ([]models.Item, error)

	// GetItem fetches a single item by ID.
	GetItem(ctx context.Context, itemID string) (models.Item, error)

	// UpdateItem applies a partial update to an item and returns the stored
	// record.
	UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error)

	// DeleteItem deletes an item.
	DeleteItem(ctx context.Context, itemID string) error

	// ReorderItems rewrites the display order of a desk's items.
	ReorderItems(ctx context.Context, req models.ReorderItemsRequest) error

	// MoveItem moves an item to another desk at the given position and
	// returns the stored record.
	MoveItem(ctx context.Context, req models.MoveItemRequest) (models.Item, error)

	// GetServerVersion returns the server's build version string.
	GetServerVersion(ctx context.Context) (string, error)
}
