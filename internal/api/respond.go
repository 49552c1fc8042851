package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
)

// Every response body uses the same {success, ...} envelope; nothing below
// the handlers writes to the ResponseWriter.

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Success: false, Message: message})
}

// respondDBError distinguishes an unreachable or saturated database (503,
// callers should retry) from any other database failure (500). The message
// carries the cause for operators; credentials never appear in pg errors.
func respondDBError(w http.ResponseWriter, err error) {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		respondError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	respondError(w, http.StatusInternalServerError, "Database error: "+err.Error())
}
