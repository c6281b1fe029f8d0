// Package navigation tracks which page section is highlighted in the top bar
// and asks the viewport to scroll to a requested section.
package navigation

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/pr-poehali-dev/ai-promotion-design/pkg/logger"
	"github.com/pr-poehali-dev/ai-promotion-design/pkg/tracing"
)

// Section is a named, ordered region of page content.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Region identifies a scroll target on the rendered page.
type Region struct {
	SectionID string `json:"sectionId"`
	Anchor    string `json:"anchor"`
}

// SectionLocator resolves a section id to its scroll target.
type SectionLocator interface {
	Sections() []Section
	Locate(id string) (Region, bool)
}

// ViewportScroller brings a region into view. Requests are fire-and-forget.
type ViewportScroller interface {
	ScrollIntoView(ctx context.Context, r Region)
}

// State is the navigation state observed by renderers.
type State struct {
	ActiveSectionID string `json:"activeSectionId"`
}

// Result describes what one NavigateTo call did.
type Result struct {
	State    State `json:"state"`
	Scrolled bool  `json:"scrolled"`
}

// Navigator holds the active section. Active-section changes happen only
// through NavigateTo; scroll position is not observed.
type Navigator struct {
	locator  SectionLocator
	scroller ViewportScroller
	log      *slog.Logger

	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

// New starts on the first section known to locator.
func New(locator SectionLocator, scroller ViewportScroller, log *slog.Logger) *Navigator {
	n := &Navigator{
		locator:   locator,
		scroller:  scroller,
		log:       log.With(logger.Scope("navigation")),
		listeners: make(map[int]func(State)),
	}
	if sections := locator.Sections(); len(sections) > 0 {
		n.state.ActiveSectionID = sections[0].ID
	}
	return n
}

// State returns the current navigation state.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// IsActive reports whether id is the highlighted section.
func (n *Navigator) IsActive(id string) bool {
	return n.State().ActiveSectionID == id
}

// NavigateTo makes id the active section, then asks the scroller to bring it
// into view. The state changes even when id cannot be located; in that case
// the scroll is skipped without error. Navigating to the already active
// section scrolls again.
func (n *Navigator) NavigateTo(ctx context.Context, id string) Result {
	ctx, span := tracing.Start(ctx, "navigation.navigate", attribute.String("section.id", id))
	defer span.End()

	n.mu.Lock()
	n.state.ActiveSectionID = id
	state := n.state
	listeners := n.snapshotListeners()
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}

	region, ok := n.locator.Locate(id)
	if !ok {
		n.log.Debug("section not found, scroll skipped", slog.String("section_id", id))
		span.SetAttributes(attribute.Bool("navigation.scrolled", false))
		return Result{State: state}
	}

	n.scroller.ScrollIntoView(ctx, region)
	span.SetAttributes(attribute.Bool("navigation.scrolled", true))
	return Result{State: state, Scrolled: true}
}

// Subscribe registers fn to be called after every NavigateTo. The returned
// function removes the subscription.
func (n *Navigator) Subscribe(fn func(State)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

func (n *Navigator) snapshotListeners() []func(State) {
	out := make([]func(State), 0, len(n.listeners))
	for _, fn := range n.listeners {
		out = append(out, fn)
	}
	return out
}
