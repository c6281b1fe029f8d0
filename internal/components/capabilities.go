package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/content"
)

func Capabilities() g.Node {
	return Section(
		ID(content.SectionCapabilities),
		Class("py-20 px-4"),
		Div(
			Class("container mx-auto max-w-6xl"),
			sectionHeading(content.CapabilitiesHeading),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				mapIndexed(content.Capabilities, func(i int, c content.Capability) g.Node {
					return Div(
						Class("card border border-base-300 hover:shadow-lg transition-all duration-300 animate-fade-in"),
						animationDelay(i, 0.1),
						Div(
							Class("card-body"),
							Icon(c.Icon+" text-primary size-12 mb-4", ""),
							H3(Class("card-title"), g.Text(c.Title)),
							P(Class("text-sm text-base-content/70"), g.Text(c.Description)),
						),
					)
				}),
			),
		),
	)
}

func Cases() g.Node {
	return Section(
		ID(content.SectionCases),
		Class("py-20 px-4 bg-base-200/40"),
		Div(
			Class("container mx-auto max-w-6xl"),
			sectionHeading(content.CasesHeading),
			Div(
				Class("grid md:grid-cols-2 gap-8"),
				mapIndexed(content.Cases, func(i int, c content.Case) g.Node {
					return Div(
						Class("card border border-base-300 animate-fade-in"),
						animationDelay(i, 0.15),
						Div(
							Class("card-body"),
							H3(Class("card-title text-2xl"), g.Text(c.Company)),
							Div(Class("text-5xl font-bold text-primary mb-2"), g.Text(c.Metric)),
							P(Class("text-base-content/70"), g.Text(c.Description)),
						),
					)
				}),
			),
		),
	)
}
