// Package page composes one visitor's view of the landing page: the hero
// graph, the top-bar navigation and the analysis demo card. A Controller
// lives as long as the visitor's session and is torn down by the Store.
package page

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/analysis"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/graph"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/navigation"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/logger"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/metrics"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/sse"
)

// Event is a change pushed to the browser. Kind is one of the sse event
// names; Data is JSON-encoded as the event payload.
type Event struct {
	Kind string
	Data any
}

// ScrollEvent asks the browser to bring Anchor into view.
type ScrollEvent struct {
	SectionID string `json:"sectionId"`
	Anchor    string `json:"anchor"`
	Behavior  string `json:"behavior"`
}

// View is everything needed to render the page for one session.
type View struct {
	SessionID  string               `json:"sessionId"`
	Sections   []navigation.Section `json:"sections"`
	Navigation navigation.State     `json:"navigation"`
	Analysis   analysis.Snapshot    `json:"analysis"`
	Graph      graph.Graph          `json:"-"`
}

// IsActive reports whether id is the highlighted section.
func (v View) IsActive(id string) bool {
	return v.Navigation.ActiveSectionID == id
}

// Deps are the collaborators a Controller is built from.
type Deps struct {
	Locator    navigation.SectionLocator
	Analyzer   analysis.Analyzer
	NodeCount  int
	Rand       graph.Source
	SimOptions []analysis.Option

	// RequestsPerMinute and Burst throttle Allow. Zero means unlimited.
	RequestsPerMinute int
	Burst             int
}

// Controller owns the three page subsystems of one session and fans their
// changes out to subscribers as Events.
type Controller struct {
	id      string
	graph   graph.Graph
	locator navigation.SectionLocator
	nav     *navigation.Navigator
	sim     *analysis.Simulator
	limiter *rate.Limiter
	log     *slog.Logger

	mu     sync.Mutex
	subs   map[int]func(Event)
	nextID int
	closed bool
	done   chan struct{}
	unsubs []func()
}

// NewController generates the session's graph and wires the navigator and
// simulator to the subscriber fan-out.
func NewController(id string, deps Deps, log *slog.Logger) *Controller {
	if deps.NodeCount == 0 {
		deps.NodeCount = graph.DefaultNodeCount
	}

	c := &Controller{
		id:      id,
		graph:   graph.Generate(deps.Rand, deps.NodeCount),
		locator: deps.Locator,
		log:     log.With(logger.Scope("page"), slog.String("session_id", id)),
		subs:    make(map[int]func(Event)),
		limiter: newLimiter(deps.RequestsPerMinute, deps.Burst),
		done:    make(chan struct{}),
	}
	c.nav = navigation.New(deps.Locator, c, log)
	c.sim = analysis.NewSimulator(deps.Analyzer, log, deps.SimOptions...)

	c.unsubs = []func(){
		c.nav.Subscribe(func(s navigation.State) {
			c.publish(Event{Kind: sse.EventNavigation, Data: s})
		}),
		c.sim.Subscribe(func(s analysis.Snapshot) {
			c.publish(Event{Kind: sse.EventAnalysis, Data: s})
		}),
	}
	return c
}

// ID returns the session id.
func (c *Controller) ID() string { return c.id }

// Graph returns the session's decorative graph. It never changes.
func (c *Controller) Graph() graph.Graph { return c.graph }

// Sections returns the page sections in order.
func (c *Controller) Sections() []navigation.Section { return c.locator.Sections() }

// Navigate highlights id and scrolls to it.
func (c *Controller) Navigate(ctx context.Context, id string) navigation.Result {
	res := c.nav.NavigateTo(ctx, id)

	label := id
	if !res.Scrolled {
		label = "unknown"
	}
	metrics.Navigations.WithLabelValues(label, strconv.FormatBool(res.Scrolled)).Inc()
	return res
}

// SubmitAnalysis forwards text to the simulator. It returns false when the
// submission was ignored.
func (c *Controller) SubmitAnalysis(text string) bool {
	return c.sim.Submit(text)
}

// State returns an immutable view for rendering.
func (c *Controller) State() View {
	return View{
		SessionID:  c.id,
		Sections:   c.locator.Sections(),
		Navigation: c.nav.State(),
		Analysis:   c.sim.Snapshot(),
		Graph:      c.graph,
	}
}

// ScrollIntoView turns a navigator scroll request into a scroll event for
// the browser.
func (c *Controller) ScrollIntoView(_ context.Context, r navigation.Region) {
	c.publish(Event{Kind: sse.EventScroll, Data: ScrollEvent{
		SectionID: r.SectionID,
		Anchor:    r.Anchor,
		Behavior:  "smooth",
	}})
}

// Subscribe registers fn for every Event until the returned function is
// called or the controller is closed. Subscribing to a closed controller is
// a no-op.
func (c *Controller) Subscribe(fn func(Event)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return func() {}
	}

	id := c.nextID
	c.nextID++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Subscribers returns the number of live subscriptions.
func (c *Controller) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Close cancels any pending analysis and drops all subscribers. It is safe
// to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.done)
	c.subs = make(map[int]func(Event))
	unsubs := c.unsubs
	c.unsubs = nil
	c.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
	c.sim.Close()
	c.log.Debug("page session closed")
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func newLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// Allow reports whether the session may make another API write now.
func (c *Controller) Allow() bool {
	return c.limiter.Allow()
}

// Done is closed when the controller is closed.
func (c *Controller) Done() <-chan struct{} { return c.done }

func (c *Controller) publish(ev Event) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	subs := make([]func(Event), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

var _ navigation.ViewportScroller = (*Controller)(nil)
