package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain errors onto HTTP statuses. Anything unmapped is
// logged and masked as a 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid status transition")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrIneligible):
		writeError(w, http.StatusUnprocessableEntity, "not eligible")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathUUID parses the named path segment as a UUID. Malformed identifiers
// are indistinguishable from unknown ones: both read as NotFound.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

// queryThematique parses the optional thematiqueId query parameter.
// An empty value means all thematiques; a malformed one reads as NotFound.
func queryThematique(r *http.Request) (*uuid.UUID, error) {
	raw := r.URL.Query().Get("thematiqueId")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return &id, nil
}
