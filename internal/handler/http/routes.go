package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/check-recovery", h.checkRecovery)
		r.Post("/api/auth/reset-password", h.resetPassword)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind JWT authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/setup-encryption", h.setupEncryption)
		r.Post("/api/auth/change-password", h.changePassword)
		r.Get("/api/auth/pending-recovery-key", h.getPendingRecoveryKey)
		r.Delete("/api/auth/pending-recovery-key", h.acknowledgeRecoveryKey)

		r.Post("/api/desks", h.createDesk)
		r.Get("/api/desks", h.getDesks)
		r.Get("/api/desks/{deskID}", h.getDesk)
		r.Put("/api/desks/{deskID}", h.updateDesk)
		r.Delete("/api/desks/{deskID}", h.deleteDesk)
		r.Post("/api/desks/reorder-items", h.reorderItems)
		r.Post("/api/desks/move-item", h.moveItem)

		r.Post("/api/desks/{deskID}/items", h.createItem)
		r.Get("/api/desks/{deskID}/items", h.getDeskItems)
		r.Get("/api/items/{itemID}", h.getItem)
		r.Put("/api/items/{itemID}", h.updateItem)
		r.Delete("/api/items/{itemID}", h.deleteItem)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
