package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/content"
)

func PageFooter() g.Node {
	socials := []struct {
		Icon  string
		Label string
	}{
		{"lucide--mail", "Email"},
		{"lucide--linkedin", "LinkedIn"},
		{"lucide--twitter", "Twitter"},
	}

	return Footer(
		Class("py-12 px-4 border-t border-base-300"),
		Div(
			Class("container mx-auto max-w-6xl flex flex-col md:flex-row justify-between items-center gap-4"),
			Div(Class("text-xl"), Logo("size-6")),
			Div(
				Class("flex gap-6"),
				g.Group(g.Map(socials, func(s struct {
					Icon  string
					Label string
				}) g.Node {
					return A(
						Href("#"),
						Class("text-base-content/60 hover:text-primary transition-colors"),
						Icon(s.Icon+" size-5", s.Label),
					)
				})),
			),
			P(Class("text-sm text-base-content/60"), g.Text(content.Copyright)),
		),
	)
}
