package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/estatehub/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes payload as JSON with the given status. HTML characters
// in stored text are not escaped.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

// writeError writes {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps a service error onto a response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := service.AsValidationError(err); ok {
		slog.Debug("validation failed", "path", r.URL.Path, "error", ve.Message)
		writeError(w, ve.Status, ve.Message)
		return
	}
	slog.Error("request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// writeBodyError maps a request decoding error onto a response.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}
