package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("encode response failed", "error", err)
	}
}

func writeErrorStatus(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps the service error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTooManyAttempts):
		writeErrorStatus(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeErrorStatus(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeErrorStatus(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeErrorStatus(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		writeErrorStatus(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalid):
		writeErrorStatus(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("request failed", "error", err)
		writeErrorStatus(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErrorStatus(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
