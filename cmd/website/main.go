// Command website serves the NeuroTech AI landing page.
package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/config"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/handlers"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/health"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/page"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/scheduler"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/server"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/telemetry"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/logger"
)

//go:embed static
var staticFS embed.FS

func main() {
	// Load won't overwrite existing vars, Overload will.
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		slog.Error("static assets unavailable", logger.Error(err))
		os.Exit(1)
	}

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		telemetry.Module,
		scheduler.Module,
		server.Module,
		fx.Supply(server.Assets{FS: assets}),

		// Page
		page.Module,
		handlers.Module,
		health.Module,
	).Run()
}
