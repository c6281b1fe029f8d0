package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/page"
)

// LandingPage renders the whole page for one session.
func LandingPage(v page.View) g.Node {
	return Layout(
		PageConfig{SessionID: v.SessionID},
		Topbar(v.Sections, v.Navigation.ActiveSectionID),
		Main(
			Class("bg-linear-to-b from-base-100 to-base-200/20"),
			Hero(v.Graph),
			DemoSection(v.Analysis),
			Capabilities(),
			Cases(),
			Research(),
			ContactSection(),
		),
		PageFooter(),
	)
}
