package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/content"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/graph"
)

func Hero(gr graph.Graph) g.Node {
	return Section(
		ID(content.SectionHome),
		Class("pt-32 pb-20 px-4"),
		Div(
			Class("container mx-auto max-w-6xl grid md:grid-cols-2 gap-12 items-center"),
			Div(
				Class("space-y-6 animate-fade-in"),
				H1(
					Class("text-5xl md:text-6xl font-bold leading-tight"),
					g.Text(content.Hero.Title),
					Span(
						Class("block bg-linear-to-r from-primary to-secondary bg-clip-text text-transparent"),
						g.Text(content.Hero.TitleAccent),
					),
				),
				P(Class("text-xl text-base-content/70"), g.Text(content.Hero.Lead)),
				Div(
					Class("flex gap-4"),
					Button(
						Type("button"),
						g.Attr("data-section", content.SectionTechnology),
						Class("btn btn-primary btn-lg"),
						g.Text(content.Hero.PrimaryCTA),
						Icon("lucide--arrow-right size-5 ml-2", ""),
					),
					Button(
						Type("button"),
						g.Attr("data-section", content.SectionContact),
						Class("btn btn-outline btn-lg"),
						g.Text(content.Hero.ContactCTA),
					),
				),
			),
			Div(Class("relative h-96 animate-scale-in"), NetworkGraph(gr)),
		),
	)
}

// NetworkGraph draws the decorative graph on a 100x100 view box: one line
// per edge, duplicates included, then one dot per node.
func NetworkGraph(gr graph.Graph) g.Node {
	edges := gr.Edges()
	nodes := gr.Nodes()

	lines := make([]g.Node, 0, len(edges))
	for _, e := range edges {
		lines = append(lines, g.El("line",
			g.Attr("x1", formatNumber(e.Start.X)),
			g.Attr("y1", formatNumber(e.Start.Y)),
			g.Attr("x2", formatNumber(e.End.X)),
			g.Attr("y2", formatNumber(e.End.Y)),
			g.Attr("stroke", "currentColor"),
			g.Attr("stroke-width", "0.1"),
			Class("text-primary/20"),
			g.Attr("data-edge", fmt.Sprintf("%d-%d", e.From, e.To)),
		))
	}

	dots := make([]g.Node, 0, len(nodes))
	for i, n := range nodes {
		dots = append(dots, g.El("circle",
			g.Attr("cx", formatNumber(n.X)),
			g.Attr("cy", formatNumber(n.Y)),
			g.Attr("r", "1"),
			Class("fill-primary animate-pulse-slow"),
			animationDelay(i, 0.1),
		))
	}

	return g.El("svg",
		ID("network-graph"),
		Class("w-full h-full"),
		g.Attr("viewBox", fmt.Sprintf("0 0 %d %d", int(graph.Extent), int(graph.Extent))),
		g.Attr("aria-hidden", "true"),
		g.Group(lines),
		g.Group(dots),
	)
}
