package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// WriteTimeout stays 0 by default: the page event stream is long-lived.
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"0s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	Graph     GraphConfig
	Analysis  AnalysisConfig
	Session   SessionConfig
	Events    EventsConfig
	Scheduler SchedulerConfig
	Otel      OtelConfig
}

// GraphConfig sizes the decorative hero graph.
type GraphConfig struct {
	NodeCount int `env:"GRAPH_NODE_COUNT" envDefault:"20"`
}

// AnalysisConfig controls the demo text analysis card.
type AnalysisConfig struct {
	Delay time.Duration `env:"ANALYSIS_DELAY" envDefault:"1500ms"`

	// BackendURL switches from the fabricated analyzer to a real HTTP backend.
	BackendURL     string        `env:"ANALYSIS_BACKEND_URL" envDefault:""`
	BackendTimeout time.Duration `env:"ANALYSIS_BACKEND_TIMEOUT" envDefault:"10s"`
	MaxTextLength  int           `env:"ANALYSIS_MAX_TEXT_LENGTH" envDefault:"10000"`
}

// UseBackend returns true when a real analysis backend is configured
func (a AnalysisConfig) UseBackend() bool {
	return a.BackendURL != ""
}

// SessionConfig bounds the in-memory visitor sessions.
type SessionConfig struct {
	MaxSessions   int           `env:"SESSION_MAX" envDefault:"10000"`
	IdleTTL       time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	CookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"nt_session"`
	CookieSecure  bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`

	// RequestsPerMinute throttles a session's API writes. 0 disables it.
	RequestsPerMinute int `env:"SESSION_REQUESTS_PER_MINUTE" envDefault:"120"`
	RequestBurst      int `env:"SESSION_REQUEST_BURST" envDefault:"20"`
}

// EventsConfig controls the page event stream.
type EventsConfig struct {
	HeartbeatInterval time.Duration `env:"SSE_HEARTBEAT_INTERVAL" envDefault:"30s"`
}

// SchedulerConfig controls background maintenance tasks.
type SchedulerConfig struct {
	Enabled bool `env:"SCHEDULER_ENABLED" envDefault:"true"`
}

// ListenAddr returns host:port for http.Server.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// Validate rejects settings the page cannot run with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("WEBSITE_PORT out of range: %d", c.Port)
	}
	if c.Graph.NodeCount <= 0 {
		return fmt.Errorf("GRAPH_NODE_COUNT must be positive, got %d", c.Graph.NodeCount)
	}
	if c.Analysis.Delay < 0 {
		return fmt.Errorf("ANALYSIS_DELAY must not be negative, got %s", c.Analysis.Delay)
	}
	if c.Session.MaxSessions <= 0 {
		return fmt.Errorf("SESSION_MAX must be positive, got %d", c.Session.MaxSessions)
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", c.Session.SweepInterval)
	}
	if c.Session.IdleTTL <= 0 {
		return fmt.Errorf("SESSION_IDLE_TTL must be positive, got %s", c.Session.IdleTTL)
	}
	if c.Session.RequestsPerMinute < 0 || c.Session.RequestBurst < 0 {
		return fmt.Errorf("SESSION_REQUESTS_PER_MINUTE and SESSION_REQUEST_BURST must not be negative")
	}
	if c.Events.HeartbeatInterval <= 0 {
		return fmt.Errorf("SSE_HEARTBEAT_INTERVAL must be positive, got %s", c.Events.HeartbeatInterval)
	}
	return nil
}

// Load parses the environment without logging. Used by NewConfig and tests.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.Int("graph_nodes", cfg.Graph.NodeCount),
		slog.Duration("analysis_delay", cfg.Analysis.Delay),
		slog.Bool("analysis_backend", cfg.Analysis.UseBackend()),
		slog.Int("max_sessions", cfg.Session.MaxSessions),
	)

	return cfg, nil
}
