package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/leads-portal/internal/usecase"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the usecase error taxonomy onto HTTP statuses. Every
// interaction error ends here; nothing bubbles into a panic.
func writeError(w http.ResponseWriter, err error) {
	if ve, ok := usecase.AsValidationErrors(err); ok {
		fields := make([]fieldError, len(ve))
		for i, fe := range ve {
			fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrLeadNotFound), errors.Is(err, usecase.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		var de *usecase.DomainError
		if errors.As(err, &de) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: de.Message, Code: de.Code})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
