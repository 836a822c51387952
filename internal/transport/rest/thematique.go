package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

type thematiqueService interface {
	Thematiques(ctx context.Context) ([]domain.Thematique, error)
}

// ThematiqueHandler serves the thematique catalogue.
type ThematiqueHandler struct {
	svc thematiqueService
	log *slog.Logger
}

// NewThematiqueHandler creates a ThematiqueHandler.
func NewThematiqueHandler(svc thematiqueService, logger *slog.Logger) *ThematiqueHandler {
	return &ThematiqueHandler{svc: svc, log: logger.With("handler", "thematique")}
}

type thematiqueResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Picto string `json:"picto"`
}

// List handles GET /thematiques.
func (h *ThematiqueHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Thematiques(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]thematiqueResponse, 0, len(items))
	for _, t := range items {
		out = append(out, thematiqueResponse{
			ID:    t.ID.String(),
			Label: t.Label,
			Picto: t.Picto,
		})
	}

	writeJSON(w, http.StatusOK, out)
}
