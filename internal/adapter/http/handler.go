package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"agency-campaigns/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use case that executes business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.AgencyUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. corsOrigins
// lists the origins allowed to call the API from a browser.
func NewHandler(svc port.AgencyUseCase, logger *slog.Logger, corsOrigins []string) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
	}))

	r.Get("/", h.handleRoot)
	r.Get("/test", h.handleDiagnostics)

	r.Get("/clients", h.handleListClients)
	r.Post("/clients", h.handleCreateClient)

	r.Get("/campaigns", h.handleListCampaigns)
	r.Post("/campaigns", h.handleCreateCampaign)
	r.Get("/campaigns/{id}/budget", h.handleCampaignBudget)

	r.Get("/media-plan", h.handleListMediaPlan)
	r.Post("/media-plan", h.handleCreateMediaPlanItem)

	r.Get("/actions", h.handleListActions)
	r.Post("/actions", h.handleCreateAction)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
