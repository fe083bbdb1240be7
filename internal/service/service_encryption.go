package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/webuxmotion/mdmfd-com/internal/config"
	"github.com/webuxmotion/mdmfd-com/internal/crypto"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/store"
	"github.com/webuxmotion/mdmfd-com/internal/utils"
	"github.com/webuxmotion/mdmfd-com/models"
)

// encryptionService is the concrete implementation of EncryptionService.
// It owns every server-side mutation of a user's key material: initial setup,
// password change, recovery-based reset and the one-time reveal of a freshly
// generated recovery code.
type encryptionService struct {
	userRepository    store.UserRepository
	pendingRepository store.PendingRecoveryRepository
	vault             crypto.KeyVaultService
	uuid              *utils.UUIDGenerator
	pendingKeyTTL     time.Duration
	logger            *logger.Logger
}

// NewEncryptionService constructs a new EncryptionService.
func NewEncryptionService(
	userRepository store.UserRepository,
	pendingRepository store.PendingRecoveryRepository,
	vault crypto.KeyVaultService,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) EncryptionService {
	return &encryptionService{
		userRepository:    userRepository,
		pendingRepository: pendingRepository,
		vault:             vault,
		uuid:              utils.NewUUIDGenerator(),
		pendingKeyTTL:     cfg.Workers.PendingKeyTTL,
		logger:            logger,
	}
}

// SetupEncryption provisions a master key for an account that has none.
//
// It verifies the password, generates a fresh 256-bit master key, wraps it
// under the password and under a newly generated recovery code, and stores
// the envelope together with the recovery hash in a single update.
//
// The plaintext recovery code is returned in the response and shown to the
// caller exactly once; only its SHA-256 hash survives server-side.
//
// Returns:
//   - ErrInvalidDataProvided if the password is empty.
//   - ErrWrongPassword if the password does not match.
//   - ErrEncryptionAlreadySetUp if the account already has an envelope.
func (e *encryptionService) SetupEncryption(ctx context.Context, userID int64, password string) (models.SetupEncryptionResponse, error) {
	log := logger.FromContext(ctx)

	if password == "" {
		return models.SetupEncryptionResponse{}, ErrInvalidDataProvided
	}

	user, err := e.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.SetupEncryptionResponse{}, fmt.Errorf("user search by id failed: %w", err)
	}

	// Accounts created through an external identity provider may have no
	// password hash yet; for them the supplied password becomes the account
	// password as well as the KDF input.
	if user.PasswordHash != "" && !utils.CheckPassword(password, user.PasswordHash) {
		return models.SetupEncryptionResponse{}, ErrWrongPassword
	}

	if user.HasEncryption() {
		return models.SetupEncryptionResponse{}, ErrEncryptionAlreadySetUp
	}

	masterKey, err := e.vault.GenerateMasterKey()
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("master key generation failed")
		return models.SetupEncryptionResponse{}, fmt.Errorf("master key generation failed: %w", err)
	}

	envelope, err := e.vault.WrapWithPassword(masterKey, password)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("master key wrapping failed")
		return models.SetupEncryptionResponse{}, fmt.Errorf("master key wrapping failed: %w", err)
	}

	code, err := e.vault.GenerateRecoveryKey()
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("recovery key generation failed")
		return models.SetupEncryptionResponse{}, fmt.Errorf("recovery key generation failed: %w", err)
	}

	recoveryEnvelope, err := e.vault.WrapWithRecovery(masterKey, code)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("recovery wrapping failed")
		return models.SetupEncryptionResponse{}, fmt.Errorf("recovery wrapping failed: %w", err)
	}

	err = e.userRepository.UpdateEncryptionKeys(ctx, userID, envelope, e.vault.HashRecoveryKey(code), recoveryEnvelope)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("storing key material failed")
		return models.SetupEncryptionResponse{}, fmt.Errorf("storing key material failed: %w", err)
	}

	if user.PasswordHash == "" {
		passwordHash, err := utils.HashPassword(password)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("password hashing failed")
			return models.SetupEncryptionResponse{}, fmt.Errorf("password hashing failed: %w", err)
		}
		if err := e.userRepository.UpdatePasswordAndEnvelope(ctx, userID, passwordHash, envelope); err != nil {
			log.Err(err).Int64("id", userID).Msg("storing password hash failed")
			return models.SetupEncryptionResponse{}, fmt.Errorf("storing password hash failed: %w", err)
		}
	}

	return models.SetupEncryptionResponse{
		Success:            true,
		EncryptedMasterKey: envelope,
		RecoveryKey:        code,
	}, nil
}

// ChangePassword rotates the login password without rotating the master key.
//
// It verifies the current password, rewraps the existing envelope under the
// new password (the master key itself never changes, so stored data stays
// readable) and replaces the password hash and the envelope in one update.
//
// Returns:
//   - ErrInvalidDataProvided if either password is empty.
//   - ErrWrongPassword if the current password does not match.
//   - ErrEncryptionNotSetUp if the account has no envelope yet.
func (e *encryptionService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (models.ChangePasswordResponse, error) {
	log := logger.FromContext(ctx)

	if currentPassword == "" || newPassword == "" {
		return models.ChangePasswordResponse{}, ErrInvalidDataProvided
	}

	user, err := e.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.ChangePasswordResponse{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !utils.CheckPassword(currentPassword, user.PasswordHash) {
		return models.ChangePasswordResponse{}, ErrWrongPassword
	}

	if !user.HasEncryption() {
		return models.ChangePasswordResponse{}, ErrEncryptionNotSetUp
	}

	newEnvelope, err := e.vault.Rewrap(user.EncryptedMasterKey, currentPassword, newPassword)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("envelope rewrap failed")
		return models.ChangePasswordResponse{}, fmt.Errorf("envelope rewrap failed: %w", err)
	}

	newPasswordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("password hashing failed")
		return models.ChangePasswordResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	err = e.userRepository.UpdatePasswordAndEnvelope(ctx, userID, newPasswordHash, newEnvelope)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("storing rotated credentials failed")
		return models.ChangePasswordResponse{}, fmt.Errorf("storing rotated credentials failed: %w", err)
	}

	return models.ChangePasswordResponse{
		Success:            true,
		EncryptedMasterKey: newEnvelope,
	}, nil
}

// CheckRecovery reports whether the account identified by email has a
// recovery key configured. An unknown email is reported as "no recovery key"
// rather than an error so the endpoint does not leak account existence.
func (e *encryptionService) CheckRecovery(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		return false, ErrInvalidDataProvided
	}

	user, err := e.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return false, nil
		}
		log.Err(err).Msg("user search by email failed")
		return false, fmt.Errorf("user search by email failed: %w", err)
	}

	return user.HasRecovery(), nil
}

// ResetPassword restores account access with a recovery code.
//
// It verifies the normalized code against the stored hash in constant time,
// recovers the master key from the recovery envelope, wraps it under the new
// password and replaces the password hash and the envelope in one update.
// The recovery envelope stays valid, so the same code keeps working until a
// new one is generated.
//
// Returns:
//   - ErrInvalidDataProvided if any argument is empty.
//   - ErrWrongRecoveryKey if the account is unknown, has no recovery material
//     or the code does not match. The three cases are indistinguishable on
//     purpose.
func (e *encryptionService) ResetPassword(ctx context.Context, email, recoveryKey, newPassword string) error {
	log := logger.FromContext(ctx)

	if email == "" || recoveryKey == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := e.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrWrongRecoveryKey
		}
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasRecovery() || !e.vault.VerifyRecoveryKey(recoveryKey, user.RecoveryKeyHash) {
		log.Error().Int64("id", user.UserID).Msg("recovery key verification failed")
		return ErrWrongRecoveryKey
	}

	masterKey, err := e.vault.UnwrapWithRecovery(user.RecoveryEncryptedMasterKey, recoveryKey)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("recovery unwrapping failed")
		return ErrWrongRecoveryKey
	}

	newEnvelope, err := e.vault.WrapWithPassword(masterKey, newPassword)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("master key wrapping failed")
		return fmt.Errorf("master key wrapping failed: %w", err)
	}

	newPasswordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	err = e.userRepository.UpdatePasswordAndEnvelope(ctx, user.UserID, newPasswordHash, newEnvelope)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("storing reset credentials failed")
		return fmt.Errorf("storing reset credentials failed: %w", err)
	}

	return nil
}

// GetPendingRecoveryKey returns the unexpired recovery code staged for the
// user, or a wrapped store.ErrPendingKeyNotFound when nothing awaits reveal.
func (e *encryptionService) GetPendingRecoveryKey(ctx context.Context, userID int64) (models.PendingRecoveryKey, error) {
	log := logger.FromContext(ctx)

	key, err := e.pendingRepository.FindValid(ctx, userID, time.Now())
	if err != nil {
		if !errors.Is(err, store.ErrPendingKeyNotFound) {
			log.Err(err).Int64("id", userID).Msg("pending recovery key lookup failed")
		}
		return models.PendingRecoveryKey{}, fmt.Errorf("pending recovery key lookup failed: %w", err)
	}

	return key, nil
}

// AcknowledgeRecoveryKey discards any staged recovery code for the user.
// Idempotent: acknowledging when nothing is pending is not an error.
func (e *encryptionService) AcknowledgeRecoveryKey(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := e.pendingRepository.DeleteByUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("discarding pending recovery key failed")
		return fmt.Errorf("discarding pending recovery key failed: %w", err)
	}

	return nil
}
