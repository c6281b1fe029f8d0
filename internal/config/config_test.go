package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4002, cfg.Port)
	assert.Equal(t, "0.0.0.0:4002", cfg.ListenAddr())
	assert.Equal(t, 20, cfg.Graph.NodeCount)
	assert.Equal(t, 1500*time.Millisecond, cfg.Analysis.Delay)
	assert.False(t, cfg.Analysis.UseBackend())
	assert.Equal(t, 10000, cfg.Session.MaxSessions)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, "nt_session", cfg.Session.CookieName)
	assert.Equal(t, 120, cfg.Session.RequestsPerMinute)
	assert.Equal(t, 20, cfg.Session.RequestBurst)
	assert.Equal(t, 30*time.Second, cfg.Events.HeartbeatInterval)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.Otel.Enabled())
	assert.Equal(t, "neurotech-website", cfg.Otel.ServiceName)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WEBSITE_PORT", "8080")
	t.Setenv("GRAPH_NODE_COUNT", "35")
	t.Setenv("ANALYSIS_DELAY", "250ms")
	t.Setenv("ANALYSIS_BACKEND_URL", "http://analysis.internal/v1/analyze")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ListenAddr())
	assert.Equal(t, 35, cfg.Graph.NodeCount)
	assert.Equal(t, 250*time.Millisecond, cfg.Analysis.Delay)
	assert.True(t, cfg.Analysis.UseBackend())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.Otel.Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unparseable port", "WEBSITE_PORT", "abc"},
		{"port out of range", "WEBSITE_PORT", "70000"},
		{"zero nodes", "GRAPH_NODE_COUNT", "0"},
		{"negative delay", "ANALYSIS_DELAY", "-1s"},
		{"zero sessions", "SESSION_MAX", "0"},
		{"zero sweep", "SESSION_SWEEP_INTERVAL", "0s"},
		{"zero idle ttl", "SESSION_IDLE_TTL", "0s"},
		{"zero heartbeat", "SSE_HEARTBEAT_INTERVAL", "0s"},
		{"negative request rate", "SESSION_REQUESTS_PER_MINUTE", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestOtelConfig_Enabled(t *testing.T) {
	assert.False(t, OtelConfig{}.Enabled())
	assert.True(t, OtelConfig{ExporterEndpoint: "http://collector:4318"}.Enabled())
}
