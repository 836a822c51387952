package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
	"github.com/agora-gouv/agora-backend/pkg/ctxutil"
)

// supportService defines the minimal interface needed by SupportHandler.
type supportService interface {
	Insert(ctx context.Context, qagID string, userID uuid.UUID) (domain.SupportResult, error)
}

// SupportHandler serves the support REST endpoints.
type SupportHandler struct {
	svc supportService
	log *slog.Logger
}

// NewSupportHandler creates a SupportHandler.
func NewSupportHandler(svc supportService, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{svc: svc, log: logger.With("handler", "support")}
}

type supportResponse struct {
	Result string `json:"result"`
}

// Insert handles POST /qags/{qagID}/support.
//
// The outcome is a named result, not an error: INSERTED comes back 201,
// DUPLICATE 200 and INELIGIBLE 422, each with the result in the body.
func (h *SupportHandler) Insert(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.svc.Insert(r.Context(), r.PathValue("qagID"), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	switch result {
	case domain.SupportInserted:
		status = http.StatusCreated
	case domain.SupportIneligible:
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, supportResponse{Result: result.String()})
}
