package health

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/pr-poehali-dev/ai-promotion-design/pkg/apperror"
)

// RegisterRoutes registers health check routes
func RegisterRoutes(r chi.Router, h *Handler, log *slog.Logger) {
	r.Get("/health", h.Health)
	r.Get("/healthz", h.Healthz)
	r.Get("/ready", h.Ready)
	r.Get("/debug", apperror.Handler(log, h.Debug))
	r.Get("/api/health", h.Health)
	r.Get("/api/metrics/scheduler", h.SchedulerMetrics)
}
