package handlers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/pr-poehali-dev/ai-promotion-design/pkg/apperror"
)

// RegisterRoutes mounts the page and its API on r.
func RegisterRoutes(r chi.Router, h *Handler, log *slog.Logger) {
	r.Get("/", apperror.Handler(log, h.LandingPage))
	r.Get("/fragments/analysis", apperror.Handler(log, h.AnalysisFragment))

	r.Route("/api/page", func(r chi.Router) {
		r.Get("/state", apperror.Handler(log, h.State))
		r.Get("/graph", apperror.Handler(log, h.Graph))
		r.Get("/events", apperror.Handler(log, h.Events))
		r.Post("/navigate", apperror.Handler(log, h.Navigate))
		r.Post("/analysis", apperror.Handler(log, h.SubmitAnalysis))
	})
}
