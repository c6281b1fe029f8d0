package page

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/analysis"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/config"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/content"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/scheduler"
)

// SweepTaskName is the scheduler task that closes idle sessions.
const SweepTaskName = "session_sweep"

var Module = fx.Module("page",
	fx.Provide(
		content.NewCatalog,
		NewAnalyzer,
		NewControllerFactory,
		NewSessionStore,
	),
	fx.Invoke(
		RegisterSweepTask,
		RegisterStoreLifecycle,
	),
)

// NewAnalyzer picks the real backend when one is configured.
func NewAnalyzer(cfg *config.Config, log *slog.Logger) analysis.Analyzer {
	if cfg.Analysis.UseBackend() {
		log.Info("using analysis backend", slog.String("url", cfg.Analysis.BackendURL))
		return analysis.NewHTTPAnalyzer(analysis.HTTPConfig{
			Endpoint: cfg.Analysis.BackendURL,
			Timeout:  cfg.Analysis.BackendTimeout,
		}, log)
	}
	return analysis.NewFabricatedAnalyzer(nil)
}

// NewControllerFactory builds controllers from the configured collaborators.
func NewControllerFactory(cfg *config.Config, catalog *content.Catalog, analyzer analysis.Analyzer, log *slog.Logger) NewControllerFunc {
	return func(id string) *Controller {
		return NewController(id, Deps{
			Locator:    catalog,
			Analyzer:   analyzer,
			NodeCount:  cfg.Graph.NodeCount,
			SimOptions: []analysis.Option{analysis.WithDelay(cfg.Analysis.Delay)},

			RequestsPerMinute: cfg.Session.RequestsPerMinute,
			Burst:             cfg.Session.RequestBurst,
		}, log)
	}
}

func NewSessionStore(cfg *config.Config, newController NewControllerFunc, log *slog.Logger) (*Store, error) {
	return NewStore(cfg.Session.MaxSessions, newController, log)
}

// RegisterSweepTask schedules the idle-session sweep.
func RegisterSweepTask(s *scheduler.Scheduler, store *Store, cfg *config.Config, log *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		log.Info("scheduler disabled, idle sessions will only leave by capacity")
		return nil
	}
	return s.AddIntervalTask(SweepTaskName, cfg.Session.SweepInterval, func(ctx context.Context) error {
		store.Sweep(cfg.Session.IdleTTL)
		return nil
	})
}

// RegisterStoreLifecycle closes every session on shutdown.
func RegisterStoreLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.CloseAll()
			return nil
		},
	})
}
