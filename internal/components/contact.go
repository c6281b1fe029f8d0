package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/content"
)

// ContactSection renders the enquiry form. It has no action; submitting is
// cancelled by the page script.
func ContactSection() g.Node {
	return Section(
		ID(content.SectionContact),
		Class("py-20 px-4 bg-base-200/40"),
		Div(
			Class("container mx-auto max-w-2xl"),
			Div(
				Class("text-center mb-12"),
				H2(Class("text-4xl font-bold mb-4"), g.Text(content.Contact.Heading)),
				P(Class("text-xl text-base-content/70"), g.Text(content.Contact.Subheading)),
			),
			card("animate-scale-in",
				g.El("form",
					ID("contact-form"),
					Class("space-y-4"),
					g.Attr("data-inert", "true"),
					g.Group(g.Map(content.Contact.Fields, contactField)),
					Button(
						Type("submit"),
						Class("btn btn-primary btn-lg w-full"),
						Icon("lucide--send size-5 mr-2", ""),
						g.Text(content.Contact.Submit),
					),
				),
			),
		),
	)
}

func contactField(f content.ContactField) g.Node {
	id := "contact-" + f.Name

	var input g.Node
	if f.Multiline {
		input = Textarea(ID(id), Name(f.Name), Placeholder(f.Placeholder), Class("textarea textarea-bordered w-full min-h-32"))
	} else {
		input = Input(ID(id), Name(f.Name), Type(f.Type), Placeholder(f.Placeholder), Class("input input-bordered w-full"))
	}

	return Div(
		Label(g.Attr("for", id), Class("text-sm font-medium mb-2 block"), g.Text(f.Label)),
		input,
	)
}
