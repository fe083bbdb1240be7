package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/utils"
	"github.com/webuxmotion/mdmfd-com/models"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	item.DeskID = chi.URLParam(r, "deskID")
	item.UserID = userID

	createdItem, err := h.services.ItemService.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Msg("item creation failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, createdItem, http.StatusCreated)
}

func (h *Handler) getDeskItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	items, err := h.services.ItemService.GetDeskItems(ctx, chi.URLParam(r, "deskID"), userID)
	if err != nil {
		log.Err(err).Msg("items retrieval failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	item, err := h.services.ItemService.GetItem(ctx, chi.URLParam(r, "itemID"), userID)
	if err != nil {
		log.Err(err).Msg("item retrieval failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ItemID = chi.URLParam(r, "itemID")
	update.UserID = userID

	updatedItem, err := h.services.ItemService.UpdateItem(ctx, update)
	if err != nil {
		log.Err(err).Msg("item update failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, updatedItem, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.ItemService.DeleteItem(ctx, chi.URLParam(r, "itemID"), userID); err != nil {
		log.Err(err).Msg("item deletion failed")
		writeMappedError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reorderItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ReorderItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ItemService.ReorderItems(ctx, req.DeskID, userID, req.ItemIDs); err != nil {
		log.Err(err).Msg("items reordering failed")
		writeMappedError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) moveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.MoveItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	movedItem, err := h.services.ItemService.MoveItem(ctx, req.ItemID, req.ToDeskID, req.Position, userID)
	if err != nil {
		log.Err(err).Msg("item move failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, movedItem, http.StatusOK)
}
