package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Qag        *QagHandler
	Support    *SupportHandler
	Moderation *ModerationHandler
	Thematique *ThematiqueHandler
	Health     *HealthHandler
}

// NewRouter builds the route table. Middleware is applied by the caller
// around the returned handler.
func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("GET /thematiques", h.Thematique.List)

	mux.HandleFunc("POST /qags", h.Qag.Submit)
	mux.HandleFunc("GET /qags/popular", h.Qag.Popular)
	mux.HandleFunc("GET /qags/latest", h.Qag.Latest)
	mux.HandleFunc("GET /qags/supported", h.Qag.Supported)
	mux.HandleFunc("GET /qags/{qagID}", h.Qag.Get)
	mux.HandleFunc("POST /qags/{qagID}/support", h.Support.Insert)

	mux.HandleFunc("GET /moderation/queue", h.Moderation.Queue)
	mux.HandleFunc("POST /moderation/qags/{qagID}/decision", h.Moderation.Decide)
	mux.HandleFunc("POST /moderation/qags/{qagID}/select", h.Moderation.SelectForResponse)
	mux.HandleFunc("DELETE /moderation/qags/{qagID}", h.Moderation.Delete)

	return mux
}
