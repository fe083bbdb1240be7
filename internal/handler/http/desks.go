package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/utils"
	"github.com/webuxmotion/mdmfd-com/models"
)

func (h *Handler) createDesk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var desk models.Desk
	if err := json.NewDecoder(r.Body).Decode(&desk); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdDesk, err := h.services.DeskService.CreateDesk(ctx, userID, desk.Name, desk.Slug)
	if err != nil {
		log.Err(err).Msg("desk creation failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, createdDesk, http.StatusCreated)
}

func (h *Handler) getDesks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	desks, err := h.services.DeskService.GetDesks(ctx, userID)
	if err != nil {
		log.Err(err).Msg("desks retrieval failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, desks, http.StatusOK)
}

func (h *Handler) getDesk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	desk, err := h.services.DeskService.GetDesk(ctx, chi.URLParam(r, "deskID"), userID)
	if err != nil {
		log.Err(err).Msg("desk retrieval failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, desk, http.StatusOK)
}

func (h *Handler) updateDesk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var desk models.Desk
	if err := json.NewDecoder(r.Body).Decode(&desk); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	desk.DeskID = chi.URLParam(r, "deskID")
	desk.UserID = userID

	updatedDesk, err := h.services.DeskService.UpdateDesk(ctx, desk)
	if err != nil {
		log.Err(err).Msg("desk update failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, updatedDesk, http.StatusOK)
}

func (h *Handler) deleteDesk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.DeskService.DeleteDesk(ctx, chi.URLParam(r, "deskID"), userID); err != nil {
		log.Err(err).Msg("desk deletion failed")
		writeMappedError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
