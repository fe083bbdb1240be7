package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/service"
	"github.com/webuxmotion/mdmfd-com/internal/store"
	"github.com/webuxmotion/mdmfd-com/internal/utils"
	"github.com/webuxmotion/mdmfd-com/models"
)

// setupEncryption provisions envelope encryption for the authenticated user.
// The response is the only place the plaintext recovery code ever appears.
func (h *Handler) setupEncryption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.SetupEncryptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.EncryptionService.SetupEncryption(ctx, userID, req.Password)
	if err != nil {
		log.Err(err).Msg("encryption setup failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// changePassword rotates the login password and rewraps the master key
// envelope under the new one.
func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.EncryptionService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		log.Err(err).Msg("password change failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// checkRecovery reports whether an account has a recovery key configured.
// Public: the password-reset form calls it before asking for a code.
func (h *Handler) checkRecovery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CheckRecoveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	hasRecovery, err := h.services.EncryptionService.CheckRecovery(ctx, req.Email)
	if err != nil {
		log.Err(err).Msg("recovery check failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.CheckRecoveryResponse{HasRecoveryKey: hasRecovery}, http.StatusOK)
}

// resetPassword restores account access with a recovery code. Public.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.EncryptionService.ResetPassword(ctx, req.Email, req.RecoveryKey, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, service.ErrWrongRecoveryKey):
			log.Err(err).Msg("recovery key verification failed")
			http.Error(w, "invalid recovery key", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("password reset failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.ResetPasswordResponse{
		Success: true,
		Message: "password has been reset",
	}, http.StatusOK)
}

// getPendingRecoveryKey reveals a freshly generated recovery code once.
// A missing or expired record is an empty 200, not a 404: the client polls
// this endpoint after login and absence is the common case.
func (h *Handler) getPendingRecoveryKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	key, err := h.services.EncryptionService.GetPendingRecoveryKey(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrPendingKeyNotFound) {
			utils.WriteJSON(w, models.PendingRecoveryKeyResponse{}, http.StatusOK)
			return
		}
		log.Err(err).Msg("pending recovery key retrieval failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.PendingRecoveryKeyResponse{RecoveryKey: &key.RecoveryKey}, http.StatusOK)
}

// acknowledgeRecoveryKey discards the pending code after the client has
// shown it to the user.
func (h *Handler) acknowledgeRecoveryKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.EncryptionService.AcknowledgeRecoveryKey(ctx, userID); err != nil {
		log.Err(err).Msg("recovery key acknowledgment failed")
		writeMappedError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
