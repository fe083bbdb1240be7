package service

import (
	"context"
	"fmt"

	"github.com/webuxmotion/mdmfd-com/internal/adapter"
	"github.com/webuxmotion/mdmfd-com/internal/crypto"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/utils"
	"github.com/webuxmotion/mdmfd-com/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	session *crypto.UnlockSession
	logger  *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService] that talks to the
// server through serverAdapter and holds the unwrapped master key in session.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, session *crypto.UnlockSession, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter: serverAdapter,
		session: session,
		logger:  logger,
	}
}

// Register implements [ClientAuthService].
func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	registered, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return registered, nil
}

// Login implements [ClientAuthService]. A failed unlock does not fail the
// login: the session simply stays locked and encrypted fields render as
// stored, which is the same degraded mode the web client uses.
func (a *clientAuthService) Login(ctx context.Context, email, password string) (int64, error) {
	resp, err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return 0, mapAdapterError(err)
	}

	userID, err := utils.ParseUserIDFromJWT(a.adapter.Token())
	if err != nil {
		return 0, fmt.Errorf("parse user id from token: %w", err)
	}

	if resp.EncryptedMasterKey != "" {
		if err := a.session.UnlockWithPassword(resp.EncryptedMasterKey, password); err != nil {
			a.logger.Warn().Err(err).Msg("could not unlock field cipher; continuing locked")
		}
	}

	return userID, nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout() {
	a.session.Lock()
	a.adapter.SetToken("")
}

// IsUnlocked implements [ClientAuthService].
func (a *clientAuthService) IsUnlocked() bool {
	return a.session.IsUnlocked()
}

// SetupEncryption implements [ClientAuthService].
func (a *clientAuthService) SetupEncryption(ctx context.Context, password string) (models.SetupEncryptionResponse, error) {
	resp, err := a.adapter.SetupEncryption(ctx, models.SetupEncryptionRequest{Password: password})
	if err != nil {
		return models.SetupEncryptionResponse{}, mapAdapterError(err)
	}

	if err := a.session.UnlockWithPassword(resp.EncryptedMasterKey, password); err != nil {
		a.logger.Warn().Err(err).Msg("could not unlock field cipher after setup; continuing locked")
	}

	return resp, nil
}

// ChangePassword implements [ClientAuthService]. On success the session is
// re-unlocked with the envelope re-wrapped under the new password.
func (a *clientAuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	resp, err := a.adapter.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		return mapAdapterError(err)
	}

	if resp.EncryptedMasterKey != "" {
		if err := a.session.UnlockWithPassword(resp.EncryptedMasterKey, newPassword); err != nil {
			a.logger.Warn().Err(err).Msg("could not re-unlock field cipher after password change")
		}
	}

	return nil
}

// CheckRecovery implements [ClientAuthService].
func (a *clientAuthService) CheckRecovery(ctx context.Context, email string) (bool, error) {
	resp, err := a.adapter.CheckRecovery(ctx, models.CheckRecoveryRequest{Email: email})
	if err != nil {
		return false, mapAdapterError(err)
	}

	return resp.HasRecoveryKey, nil
}

// ResetPassword implements [ClientAuthService].
func (a *clientAuthService) ResetPassword(ctx context.Context, email, recoveryKey, newPassword string) error {
	_, err := a.adapter.ResetPassword(ctx, models.ResetPasswordRequest{
		Email:       email,
		RecoveryKey: recoveryKey,
		NewPassword: newPassword,
	})
	if err != nil {
		return mapAdapterError(err)
	}

	return nil
}

// FetchPendingRecoveryKey implements [ClientAuthService].
func (a *clientAuthService) FetchPendingRecoveryKey(ctx context.Context) (string, bool, error) {
	resp, err := a.adapter.GetPendingRecoveryKey(ctx)
	if err != nil {
		return "", false, mapAdapterError(err)
	}

	if resp.RecoveryKey == nil {
		return "", false, nil
	}
	return *resp.RecoveryKey, true, nil
}

// AcknowledgeRecoveryKey implements [ClientAuthService].
func (a *clientAuthService) AcknowledgeRecoveryKey(ctx context.Context) error {
	if err := a.adapter.AcknowledgeRecoveryKey(ctx); err != nil {
		return mapAdapterError(err)
	}

	return nil
}
