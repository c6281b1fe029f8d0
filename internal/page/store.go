package page

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pr-poehali-dev/ai-promotion-design/pkg/logger"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/metrics"
)

// Eviction reasons recorded on the sessions_evicted metric.
const (
	ReasonCapacity = "capacity"
	ReasonIdle     = "idle"
	ReasonShutdown = "shutdown"
)

// NewControllerFunc builds the controller for a fresh session id.
type NewControllerFunc func(id string) *Controller

type entry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Store keeps the live sessions in a bounded LRU. Every way a session
// leaves the store, whether pushed out by capacity, swept for idleness or
// closed at shutdown, goes through Controller.Close.
type Store struct {
	newController NewControllerFunc
	now           func() time.Time
	log           *slog.Logger

	mu     sync.Mutex
	cache  *lru.Cache[string, *entry]
	reason string
}

// NewStore holds at most size sessions.
func NewStore(size int, newController NewControllerFunc, log *slog.Logger) (*Store, error) {
	s := &Store{
		newController: newController,
		now:           time.Now,
		log:           log.With(logger.Scope("page.store")),
		reason:        ReasonCapacity,
	}

	cache, err := lru.NewWithEvict(size, s.onEvict)
	if err != nil {
		return nil, err
	}
	s.cache = cache
	return s, nil
}

// onEvict runs with s.mu held by whichever store method caused the eviction.
func (s *Store) onEvict(id string, e *entry) {
	e.ctrl.Close()
	metrics.SessionsEvicted.WithLabelValues(s.reason).Inc()
	s.log.Debug("session evicted", slog.String("session_id", id), slog.String("reason", s.reason))
}

// Get returns the live controller for id and marks it as seen.
func (s *Store) Get(id string) (*Controller, bool) {
	if id == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.ctrl, true
}

// Create starts a new session under a fresh id. The least recently used
// session is closed if the store is full.
func (s *Store) Create() *Controller {
	id := uuid.NewString()
	ctrl := s.newController(id)

	s.mu.Lock()
	s.reason = ReasonCapacity
	s.cache.Add(id, &entry{ctrl: ctrl, lastSeen: s.now()})
	n := s.cache.Len()
	s.mu.Unlock()

	metrics.SessionsActive.Set(float64(n))
	s.log.Debug("session created", slog.String("session_id", id))
	return ctrl
}

// Resolve returns the session for id, or a new one when id is unknown.
// created reports which happened.
func (s *Store) Resolve(id string) (ctrl *Controller, created bool) {
	if ctrl, ok := s.Get(id); ok {
		return ctrl, false
	}
	return s.Create(), true
}

// Touch marks id as seen without moving it in the LRU order. It reports
// whether the session is still live.
func (s *Store) Touch(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.cache.Peek(id)
	if !ok {
		return false
	}
	e.lastSeen = s.now()
	return true
}

// Sweep closes sessions not seen for longer than idle and returns how many
// were removed.
func (s *Store) Sweep(idle time.Duration) int {
	s.mu.Lock()
	cutoff := s.now().Add(-idle)
	s.reason = ReasonIdle

	removed := 0
	for _, id := range s.cache.Keys() {
		e, ok := s.cache.Peek(id)
		if !ok || !e.lastSeen.Before(cutoff) {
			continue
		}
		if s.cache.Remove(id) {
			removed++
		}
	}
	s.reason = ReasonCapacity
	n := s.cache.Len()
	s.mu.Unlock()

	metrics.SessionsActive.Set(float64(n))
	if removed > 0 {
		s.log.Info("idle sessions swept", slog.Int("removed", removed), slog.Int("remaining", n))
	}
	return removed
}

// CloseAll closes every session.
func (s *Store) CloseAll() {
	s.mu.Lock()
	s.reason = ReasonShutdown
	n := s.cache.Len()
	s.cache.Purge()
	s.reason = ReasonCapacity
	s.mu.Unlock()

	metrics.SessionsActive.Set(0)
	s.log.Info("all sessions closed", slog.Int("count", n))
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
