package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErrorMessage writes {"error": msg} with the given status code
func writeErrorMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeError maps domain errors to status codes
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUserRequired):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotClockedIn):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	default:
		logging.Logger.Error("Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal error")
	}
}
