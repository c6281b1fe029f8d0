package components

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/content"
)

func Logo(size string) g.Node {
	return Div(
		Class("flex items-center gap-2 font-bold"),
		Icon("lucide--brain text-primary "+size, ""),
		Span(
			Class("bg-linear-to-r from-primary to-secondary bg-clip-text text-transparent"),
			g.Text(content.Brand),
		),
	)
}

// iconName turns "lucide--zap size-6" into the iconify name "lucide:zap".
func iconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func iconClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return "iconify inline-block " + strings.Join(parts[1:], " ")
	}
	return "iconify inline-block"
}

// Icon renders an iconify placeholder. The first word of iconClass is the
// icon, the rest are extra classes. An empty ariaLabel hides it from
// assistive tech.
func Icon(iconClass, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class(iconClasses(iconClass)),
			g.Attr("data-icon", iconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class(iconClasses(iconClass)),
		g.Attr("data-icon", iconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

// mapIndexed is g.Map with the element index, for staggered animations.
func mapIndexed[T any](items []T, fn func(int, T) g.Node) g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(i, item))
	}
	return g.Group(nodes)
}

func sectionHeading(text string) g.Node {
	return H2(Class("text-3xl md:text-4xl font-bold text-center mb-12"), g.Text(text))
}

// card is the shared bordered panel.
func card(class string, children ...g.Node) g.Node {
	return Div(
		Class("card border border-base-300 bg-base-100 "+class),
		Div(Class("card-body"), g.Group(children)),
	)
}

func animationDelay(i int, step float64) g.Node {
	return Style(fmt.Sprintf("animation-delay: %ss", formatNumber(float64(i)*step)))
}

// formatNumber prints v with as few digits as needed, at most two decimals.
func formatNumber(v float64) string {
	return strconv.FormatFloat(roundTo(v, 2), 'f', -1, 64)
}

func roundTo(v float64, places int) float64 {
	p := 1.0
	for range places {
		p *= 10
	}
	if v < 0 {
		return -float64(int64(-v*p+0.5)) / p
	}
	return float64(int64(v*p+0.5)) / p
}
