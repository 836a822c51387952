package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
	"github.com/agora-gouv/agora-backend/internal/transport/middleware"
	"github.com/agora-gouv/agora-backend/pkg/ctxutil"
)

// moderationService defines the minimal interface needed by ModerationHandler.
type moderationService interface {
	GetModerationQueue(ctx context.Context, moderatorID uuid.UUID) ([]domain.Qag, error)
	Decide(ctx context.Context, qagID, moderatorID uuid.UUID, newStatus domain.QagStatus) (*domain.Qag, error)
	SelectForResponse(ctx context.Context, qagID, moderatorID uuid.UUID) (*domain.Qag, error)
	DeleteQag(ctx context.Context, qagID uuid.UUID) (*domain.Qag, error)
}

// ModerationHandler serves the moderator REST endpoints. All of them
// require the admin role claim.
type ModerationHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(svc moderationService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{svc: svc, log: logger.With("handler", "moderation")}
}

type decideRequest struct {
	Status string `json:"status"`
}

// Queue handles GET /moderation/queue. Returned items are claimed for the
// requesting moderator until the lock TTL expires.
func (h *ModerationHandler) Queue(w http.ResponseWriter, r *http.Request) {
	moderatorID, ok := h.requireModerator(w, r)
	if !ok {
		return
	}

	items, err := h.svc.GetModerationQueue(r.Context(), moderatorID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]qagResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toQagResponse(item))
	}

	writeJSON(w, http.StatusOK, out)
}

// Decide handles POST /moderation/qags/{qagID}/decision.
func (h *ModerationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	moderatorID, ok := h.requireModerator(w, r)
	if !ok {
		return
	}

	qagID, err := pathUUID(r, "qagID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Decide(r.Context(), qagID, moderatorID, domain.QagStatus(req.Status))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQagResponse(*updated))
}

// SelectForResponse handles POST /moderation/qags/{qagID}/select.
func (h *ModerationHandler) SelectForResponse(w http.ResponseWriter, r *http.Request) {
	moderatorID, ok := h.requireModerator(w, r)
	if !ok {
		return
	}

	qagID, err := pathUUID(r, "qagID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.SelectForResponse(r.Context(), qagID, moderatorID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQagResponse(*updated))
}

// Delete handles DELETE /moderation/qags/{qagID}.
func (h *ModerationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireModerator(w, r); !ok {
		return
	}

	qagID, err := pathUUID(r, "qagID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	deleted, err := h.svc.DeleteQag(r.Context(), qagID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQagResponse(*deleted))
}

func (h *ModerationHandler) requireModerator(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	moderatorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return uuid.Nil, false
	}
	return moderatorID, true
}
