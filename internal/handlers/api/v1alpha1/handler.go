// Package v1alpha1 serves the journey use cases over HTTP
package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/rpg-saga/internal/errors"
	"github.com/KirkDiggler/rpg-saga/internal/services/journey"
)

// maxBodyBytes caps request bodies; the only body is a decision id
const maxBodyBytes = 1 << 16

// HandlerConfig holds dependencies for the journey handler
type HandlerConfig struct {
	JourneyService journey.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.JourneyService == nil {
		return errors.InvalidArgument("journey service is required")
	}
	return nil
}

// Handler exposes journey.Service as a JSON API
type Handler struct {
	journeyService journey.Service
}

// NewHandler creates a new journey handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		journeyService: cfg.JourneyService,
	}, nil
}

// Routes builds the router with its middleware stack
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggingMiddleware)
	r.Use(JSONContentType)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, errors.NotFound("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorStatus(w, http.StatusMethodNotAllowed, errors.InvalidArgument("method not allowed"))
	})

	r.Get("/health", h.Health)

	r.Route("/api/v1/sessions", func(r chi.Router) {
		r.Post("/", h.StartSession)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/timeline", h.GetTimeline)
			r.Get("/events/{eventID}", h.GetEvent)
			r.Post("/events/{eventID}/decisions", h.ProcessDecision)
			r.Get("/character", h.GetCharacterState)
			r.Get("/history", h.GetSessionHistory)
		})
	})

	return r
}
