package health

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/config"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/scheduler"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/version"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/apperror"
)

// SessionCounter reports how many page sessions are live.
type SessionCounter interface {
	Len() int
}

// TaskReporter exposes the background scheduler state.
type TaskReporter interface {
	IsRunning() bool
	Tasks() []scheduler.TaskInfo
}

// Handler handles health check requests
type Handler struct {
	sessions SessionCounter
	tasks    TaskReporter
	cfg      *config.Config
	startAt  time.Time
}

func NewHandler(sessions SessionCounter, tasks TaskReporter, cfg *config.Config) *Handler {
	return &Handler{
		sessions: sessions,
		tasks:    tasks,
		cfg:      cfg,
		startAt:  time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"
)

func (h *Handler) schedulerCheck() Check {
	switch {
	case !h.cfg.Scheduler.Enabled:
		return Check{Status: statusDisabled}
	case h.tasks.IsRunning():
		return Check{Status: statusHealthy}
	default:
		return Check{Status: statusUnhealthy, Message: "scheduler not running, idle sessions are not swept"}
	}
}

// Health returns the overall service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	sched := h.schedulerCheck()

	overall := statusHealthy
	if sched.Status == statusUnhealthy {
		overall = statusUnhealthy
	}

	response := HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).Round(time.Second).String(),
		Version:   version.Short(),
		Checks: map[string]Check{
			"sessions": {
				Status:  statusHealthy,
				Message: sessionsMessage(h.sessions.Len(), h.cfg.Session.MaxSessions),
			},
			"scheduler": sched,
		},
	}

	code := http.StatusOK
	if overall == statusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	apperror.WriteJSON(w, code, response)
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Ready is the readiness probe. The page is ready once background
// maintenance is running, or immediately when it is disabled.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.schedulerCheck().Status == statusUnhealthy {
		apperror.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "scheduler not started",
		})
		return
	}
	apperror.WriteJSON(w, http.StatusOK, map[string]any{"status": "ready"})
}

// Debug returns runtime details outside production.
func (h *Handler) Debug(w http.ResponseWriter, r *http.Request) error {
	if h.cfg.Environment == "production" {
		return apperror.ErrNotFound
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	apperror.WriteJSON(w, http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"version":     version.Info(),
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"sessions": map[string]any{
			"active":   h.sessions.Len(),
			"capacity": h.cfg.Session.MaxSessions,
			"idle_ttl": h.cfg.Session.IdleTTL.String(),
		},
	})
	return nil
}

// SchedulerMetrics lists scheduled tasks with their next and previous runs.
func (h *Handler) SchedulerMetrics(w http.ResponseWriter, r *http.Request) {
	apperror.WriteJSON(w, http.StatusOK, map[string]any{
		"running":   h.tasks.IsRunning(),
		"tasks":     h.tasks.Tasks(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func sessionsMessage(active, capacity int) string {
	return fmt.Sprintf("%d/%d sessions", active, capacity)
}
