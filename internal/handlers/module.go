package handlers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
)

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
	fx.Invoke(func(r *chi.Mux, h *Handler, log *slog.Logger) {
		RegisterRoutes(r, h, log)
	}),
)
