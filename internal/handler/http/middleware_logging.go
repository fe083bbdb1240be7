package http

import (
	"net/http"
	"time"

	"github.com/webuxmotion/mdmfd-com/internal/logger"
)

// withLogging emits one access-log line per request with the method, URI,
// response status, body size and handling duration. The URI is captured
// before the handler runs since downstream code may rewrite the request.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		uri := r.RequestURI
		method := r.Method
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
