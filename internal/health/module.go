package health

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/config"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/page"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/scheduler"
)

var Module = fx.Module("health",
	fx.Provide(func(store *page.Store, s *scheduler.Scheduler, cfg *config.Config) *Handler {
		return NewHandler(store, s, cfg)
	}),
	fx.Invoke(func(r *chi.Mux, h *Handler, log *slog.Logger) {
		RegisterRoutes(r, h, log)
	}),
)
