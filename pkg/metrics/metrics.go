// Package metrics holds the Prometheus collectors for the page subsystems.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis outcomes used as the "outcome" label.
const (
	OutcomeAccepted  = "accepted"
	OutcomeRejected  = "rejected"
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
)

var (
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "website_sessions_active",
		Help: "Number of live visitor page sessions",
	})

	SessionsEvicted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_sessions_evicted_total",
		Help: "Sessions torn down, by reason",
	}, []string{"reason"})

	Navigations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_navigations_total",
		Help: "Navigation requests by target section and whether a scroll was issued",
	}, []string{"section", "scrolled"})

	Analyses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_analyses_total",
		Help: "Text analysis submissions by outcome",
	}, []string{"outcome"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "website_analysis_duration_seconds",
		Help:    "Wall time from submit to completion",
		Buckets: []float64{0.5, 1, 1.5, 2, 3, 5, 10},
	})

	Throttled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_requests_throttled_total",
		Help: "Page API writes rejected by the per-session rate limit",
	}, []string{"route"})

	EventStreams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "website_event_streams_active",
		Help: "Open page event (SSE) connections",
	})
)
