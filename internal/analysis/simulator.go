package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/pr-poehali-dev/ai-promotion-design/pkg/logger"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/metrics"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/tracing"
)

// DefaultDelay is how long a submission stays in processing.
const DefaultDelay = 1500 * time.Millisecond

// Simulator runs at most one analysis at a time.
//
//	Idle | Complete | Errored --Submit--> Processing --delay--> Complete | Errored
//
// A Submit while Processing is ignored. Close cancels the pending completion.
type Simulator struct {
	analyzer Analyzer
	clock    Clock
	delay    time.Duration
	log      *slog.Logger

	mu          sync.Mutex
	state       State
	result      *Result
	failure     *ErrorInfo
	submittedAt time.Time
	pending     *pendingRun
	generation  uint64
	closed      bool
	listeners   map[int]func(Snapshot)
	nextID      int
}

// pendingRun is the handle for the one in-flight completion.
type pendingRun struct {
	timer  Timer
	cancel context.CancelFunc
}

func (p *pendingRun) stop() {
	p.timer.Stop()
	p.cancel()
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(s *Simulator) { s.clock = c }
}

// WithDelay replaces DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(s *Simulator) { s.delay = d }
}

// NewSimulator starts Idle.
func NewSimulator(analyzer Analyzer, log *slog.Logger, opts ...Option) *Simulator {
	s := &Simulator{
		analyzer:  analyzer,
		clock:     RealClock{},
		delay:     DefaultDelay,
		log:       log.With(logger.Scope("analysis")),
		state:     StateIdle,
		listeners: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit starts an analysis of text. It returns false, changing nothing,
// when text is blank, when an analysis is already in flight, or after Close.
// On success the previous result is cleared immediately and the completion
// is scheduled for after the configured delay. The text is captured now.
func (s *Simulator) Submit(text string) bool {
	if strings.TrimSpace(text) == "" {
		metrics.Analyses.WithLabelValues(metrics.OutcomeRejected).Inc()
		return false
	}

	s.mu.Lock()
	if s.closed || s.state == StateProcessing {
		s.mu.Unlock()
		metrics.Analyses.WithLabelValues(metrics.OutcomeRejected).Inc()
		return false
	}

	s.generation++
	gen := s.generation
	s.state = StateProcessing
	s.result = nil
	s.failure = nil
	s.submittedAt = s.clock.Now()

	ctx, cancel := context.WithCancel(context.Background())
	req := Request{Text: text}
	s.pending = &pendingRun{
		cancel: cancel,
		timer: s.clock.AfterFunc(s.delay, func() {
			s.run(ctx, gen, req)
		}),
	}

	snap := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	metrics.Analyses.WithLabelValues(metrics.OutcomeAccepted).Inc()
	s.log.Debug("analysis submitted", slog.Uint64("generation", gen), slog.Int("chars", len(text)))
	notify(listeners, snap)
	return true
}

func (s *Simulator) run(ctx context.Context, gen uint64, req Request) {
	ctx, span := tracing.Start(ctx, "analysis.run", attribute.Int64("analysis.generation", int64(gen)))
	defer span.End()

	res, err := s.analyzer.Analyze(ctx, req)
	if err == nil && res == nil {
		err = fmt.Errorf("%w: empty result", ErrFatal)
	}
	tracing.Fail(span, err)
	s.finish(gen, res, err)
}

func (s *Simulator) finish(gen uint64, res *Result, err error) {
	s.mu.Lock()
	if s.closed || gen != s.generation || s.state != StateProcessing {
		s.mu.Unlock()
		return
	}

	s.pending = nil
	if err != nil {
		s.state = StateErrored
		kind := KindOf(err)
		s.failure = &ErrorInfo{Kind: kind, Message: kind.Message()}
	} else {
		s.state = StateComplete
		s.result = res
	}
	took := s.clock.Now().Sub(s.submittedAt)
	snap := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	metrics.AnalysisDuration.Observe(took.Seconds())
	if err != nil {
		metrics.Analyses.WithLabelValues(metrics.OutcomeFailed).Inc()
		s.log.Warn("analysis failed", slog.String("kind", string(KindOf(err))), logger.Error(err))
	} else {
		metrics.Analyses.WithLabelValues(metrics.OutcomeCompleted).Inc()
		s.log.Debug("analysis complete", slog.Int("word_count", res.WordCount))
	}
	notify(listeners, snap)
}

// Snapshot returns the current state and result.
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Pending reports whether a completion is scheduled.
func (s *Simulator) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Subscribe registers fn to be called after every state change. The returned
// function removes the subscription.
func (s *Simulator) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Close cancels any pending completion and rejects further submissions.
// No completion is applied after Close returns, even one whose timer has
// already fired.
func (s *Simulator) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	pending := s.pending
	s.pending = nil
	clear(s.listeners)
	s.mu.Unlock()

	if pending != nil {
		pending.stop()
		metrics.Analyses.WithLabelValues(metrics.OutcomeCancelled).Inc()
		s.log.Debug("pending analysis cancelled")
	}
}

func (s *Simulator) snapshotLocked() Snapshot {
	snap := Snapshot{State: s.state, Error: s.failure}
	if s.result != nil {
		r := *s.result
		r.KeyTerms = append([]string(nil), s.result.KeyTerms...)
		snap.Result = &r
	}
	if !s.submittedAt.IsZero() {
		t := s.submittedAt
		snap.SubmittedAt = &t
	}
	return snap
}

func (s *Simulator) listenersLocked() []func(Snapshot) {
	out := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []func(Snapshot), snap Snapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}
