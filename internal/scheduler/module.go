package scheduler

import (
	"go.uber.org/fx"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/config"
)

var Module = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(RegisterLifecycle),
)

// RegisterLifecycle starts the scheduler with the app unless disabled.
// Tasks registered by other modules are added before OnStart runs.
func RegisterLifecycle(lc fx.Lifecycle, s *Scheduler, cfg *config.Config) {
	if !cfg.Scheduler.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})
}
