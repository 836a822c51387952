package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
	"github.com/agora-gouv/agora-backend/internal/service/qag"
	"github.com/agora-gouv/agora-backend/pkg/ctxutil"
)

// qagService defines the minimal interface needed by QagHandler.
type qagService interface {
	SubmitQag(ctx context.Context, input qag.SubmitQagInput) (*domain.Qag, error)
	GetQag(ctx context.Context, qagID uuid.UUID, userID *uuid.UUID) (*qag.Details, error)
	PopularQags(ctx context.Context, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error)
	LatestQags(ctx context.Context, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error)
	SupportedQags(ctx context.Context, userID uuid.UUID, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error)
}

// QagHandler serves the public QaG REST endpoints.
type QagHandler struct {
	svc qagService
	log *slog.Logger
}

// NewQagHandler creates a QagHandler.
func NewQagHandler(svc qagService, logger *slog.Logger) *QagHandler {
	return &QagHandler{svc: svc, log: logger.With("handler", "qag")}
}

type submitQagRequest struct {
	ThematiqueID string `json:"thematiqueId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Username     string `json:"username"`
}

type qagResponse struct {
	ID           string    `json:"id"`
	ThematiqueID string    `json:"thematiqueId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Username     *string   `json:"username"`
	PostDate     time.Time `json:"postDate"`
	Status       string    `json:"status"`
}

type qagListItemResponse struct {
	qagResponse
	SupportCount int `json:"supportCount"`
}

type qagDetailsResponse struct {
	qagResponse
	SupportCount      int                  `json:"supportCount"`
	IsSupportedByUser bool                 `json:"isSupportedByUser"`
	Response          *officialResponseDTO `json:"response,omitempty"`
}

type officialResponseDTO struct {
	Kind     string    `json:"kind"`
	Author   string    `json:"author"`
	PostDate time.Time `json:"postDate"`

	Text *string `json:"text,omitempty"`

	VideoURL    *string `json:"videoUrl,omitempty"`
	VideoWidth  *int    `json:"videoWidth,omitempty"`
	VideoHeight *int    `json:"videoHeight,omitempty"`
	Transcript  *string `json:"transcript,omitempty"`
}

// Submit handles POST /qags.
func (h *QagHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req submitQagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	thematiqueID, _ := uuid.Parse(req.ThematiqueID) // Nil on failure, caught by validation

	created, err := h.svc.SubmitQag(r.Context(), qag.SubmitQagInput{
		ThematiqueID: thematiqueID,
		Title:        req.Title,
		Description:  req.Description,
		AuthorID:     userID,
		Username:     req.Username,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQagResponse(*created))
}

// Get handles GET /qags/{qagID}.
func (h *QagHandler) Get(w http.ResponseWriter, r *http.Request) {
	qagID, err := pathUUID(r, "qagID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var userID *uuid.UUID
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		userID = &id
	}

	details, err := h.svc.GetQag(r.Context(), qagID, userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQagDetailsResponse(details))
}

// Popular handles GET /qags/popular?thematiqueId=...
func (h *QagHandler) Popular(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, h.svc.PopularQags)
}

// Latest handles GET /qags/latest?thematiqueId=...
func (h *QagHandler) Latest(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, h.svc.LatestQags)
}

// Supported handles GET /qags/supported?thematiqueId=...
// The list is scoped to the authenticated user.
func (h *QagHandler) Supported(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	h.serveList(w, r, func(ctx context.Context, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error) {
		return h.svc.SupportedQags(ctx, userID, thematiqueID)
	})
}

func (h *QagHandler) serveList(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error),
) {
	thematiqueID, err := queryThematique(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := list(r.Context(), thematiqueID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]qagListItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, qagListItemResponse{
			qagResponse:  toQagResponse(item.Qag),
			SupportCount: item.SupportCount,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func toQagResponse(q domain.Qag) qagResponse {
	return qagResponse{
		ID:           q.ID.String(),
		ThematiqueID: q.ThematiqueID.String(),
		Title:        q.Title,
		Description:  q.Description,
		Username:     q.Username,
		PostDate:     q.PostDate,
		Status:       q.Status.String(),
	}
}

func toQagDetailsResponse(d *qag.Details) qagDetailsResponse {
	out := qagDetailsResponse{
		qagResponse:       toQagResponse(d.Qag),
		SupportCount:      d.SupportCount,
		IsSupportedByUser: d.IsSupportedByUser,
	}
	if d.Response != nil {
		out.Response = toOfficialResponseDTO(*d.Response)
	}
	return out
}

func toOfficialResponseDTO(resp domain.Response) *officialResponseDTO {
	dto := &officialResponseDTO{
		Kind:     resp.Kind.String(),
		Author:   resp.Author,
		PostDate: resp.PostDate,
	}
	switch resp.Kind {
	case domain.ResponseKindText:
		dto.Text = &resp.Text
	case domain.ResponseKindVideo:
		dto.VideoURL = &resp.VideoURL
		dto.VideoWidth = &resp.VideoWidth
		dto.VideoHeight = &resp.VideoHeight
		dto.Transcript = &resp.Transcript
	}
	return dto
}
