// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseData is a snapshot of a completed response, handed to whatever
// needs the status and size after the live writer is gone (the logging
// middleware, mostly).
type responseData struct {
	status int
	size   int

	// body holds only the payload of the last Write call, not a
	// concatenation of all writes.
	body []byte
}

// responseWriter decorates [http.ResponseWriter] to observe the status code
// and the number of body bytes written, without buffering the response.
// WriteHeader is forwarded to the underlying writer at most once; later
// calls are ignored, per the http.ResponseWriter contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
	body        []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b downstream, defaulting the status to 200 when WriteHeader
// was never called, and accumulates the byte count in size.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
