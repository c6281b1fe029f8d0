package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/navigation"
)

const (
	navActiveClass   = "text-primary"
	navInactiveClass = "text-base-content/60"
)

// Topbar renders the fixed navigation bar. Buttons carry data-section so
// the page script can post the navigation and restyle the active item.
func Topbar(sections []navigation.Section, active string) g.Node {
	return Header(
		Class("fixed top-0 inset-x-0 z-50 border-b border-base-300 bg-base-100/90 backdrop-blur"),
		Div(
			Class("container mx-auto px-4 py-4 flex items-center justify-between"),
			A(Href("#home"), g.Attr("data-section", "home"), Class("text-2xl"), Logo("size-8")),
			Nav(
				ID("topbar-nav"),
				Class("hidden md:flex gap-6"),
				g.Attr("data-active-class", navActiveClass),
				g.Attr("data-inactive-class", navInactiveClass),
				g.Group(g.Map(sections, func(s navigation.Section) g.Node {
					return topbarItem(s, s.ID == active)
				})),
			),
		),
	)
}

func topbarItem(s navigation.Section, active bool) g.Node {
	state := navInactiveClass
	if active {
		state = navActiveClass
	}
	return Button(
		Type("button"),
		g.Attr("data-section", s.ID),
		g.If(active, g.Attr("aria-current", "true")),
		Class("text-sm font-medium transition-colors hover:text-primary "+state),
		g.Text(s.Label),
	)
}
