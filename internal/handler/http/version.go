package http

import "net/http"

// getServerVersion reports the server build version as plain text. The
// endpoint is unauthenticated so clients can probe compatibility before
// logging in.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
