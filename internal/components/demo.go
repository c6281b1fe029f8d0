package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/analysis"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/content"
)

// AnalysisStatusID is the element the page script replaces when the
// analysis state changes. The textarea lives outside it so typed text
// survives a refresh.
const AnalysisStatusID = "analysis-status"

func DemoSection(snap analysis.Snapshot) g.Node {
	return Section(
		ID(content.SectionTechnology),
		Class("py-20 px-4 bg-base-200/40"),
		Div(
			Class("container mx-auto max-w-6xl"),
			Div(
				Class("text-center mb-12 animate-fade-in"),
				H2(Class("text-4xl font-bold mb-4"), g.Text(content.Demo.Heading)),
				P(Class("text-xl text-base-content/70"), g.Text(content.Demo.Subheading)),
			),
			card("max-w-4xl mx-auto animate-scale-in",
				H3(
					Class("card-title flex items-center gap-2"),
					Icon("lucide--cpu text-primary size-6", ""),
					g.Text(content.Demo.CardTitle),
				),
				P(Class("text-sm text-base-content/70"), g.Text(content.Demo.CardHint)),
				g.El("form",
					ID("analysis-form"),
					Action("/api/page/analysis"),
					Method("post"),
					Class("space-y-4 mt-4"),
					Textarea(
						ID("analysis-text"),
						Name("text"),
						Placeholder(content.Demo.Placeholder),
						Class("textarea textarea-bordered w-full min-h-32"),
					),
					AnalysisStatus(snap),
				),
			),
		),
	)
}

// AnalysisStatus renders the submit button and, once available, the
// report or the failure.
func AnalysisStatus(snap analysis.Snapshot) g.Node {
	processing := snap.State == analysis.StateProcessing

	return Div(
		ID(AnalysisStatusID),
		Class("space-y-4"),
		g.Attr("data-state", string(snap.State)),
		Button(
			Type("submit"),
			Class("btn btn-primary w-full"),
			g.If(!snap.CanSubmit(), Disabled()),
			g.If(processing, g.Group([]g.Node{
				Icon("lucide--loader-2 size-5 mr-2 animate-spin", ""),
				g.Text(content.Demo.Processing),
			})),
			g.If(!processing, g.Group([]g.Node{
				Icon("lucide--play size-5 mr-2", ""),
				g.Text(content.Demo.Submit),
			})),
		),
		g.Iff(snap.State == analysis.StateComplete && snap.Result != nil, func() g.Node {
			return analysisReport(snap.Result)
		}),
		g.Iff(snap.State == analysis.StateErrored && snap.Error != nil, func() g.Node {
			return analysisFailure(snap.Error)
		}),
	)
}

func analysisReport(r *analysis.Result) g.Node {
	return Div(
		Class("p-4 bg-base-200 rounded-lg animate-fade-in"),
		Pre(Class("whitespace-pre-wrap text-sm"), g.Text(ReportText(*r))),
	)
}

func analysisFailure(e *analysis.ErrorInfo) g.Node {
	return Div(
		Class("alert alert-warning"),
		g.Attr("data-error-kind", string(e.Kind)),
		Icon("lucide--triangle-alert size-5", ""),
		Span(g.Textf("%s: %s", content.Demo.Failed, failureReason(e.Kind))),
	)
}

func failureReason(k analysis.ErrorKind) string {
	if r, ok := content.FailureReason[string(k)]; ok {
		return r
	}
	return content.FailureReason[string(analysis.KindFatal)]
}

// ReportText formats a result the way the card shows it.
func ReportText(r analysis.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", content.Demo.Done)
	fmt.Fprintf(&b, "• %s: %d\n", content.Demo.Words, r.WordCount)
	fmt.Fprintf(&b, "• %s: %s\n", content.Demo.Sentiment, label(content.SentimentLabel, string(r.Sentiment)))
	fmt.Fprintf(&b, "• %s: %s\n", content.Demo.Complexity, label(content.ComplexityLabel, string(r.Complexity)))
	fmt.Fprintf(&b, "• %s: %s\n\n", content.Demo.KeyTerms, strings.Join(r.KeyTerms, ", "))
	fmt.Fprintf(&b, "%s %sс", content.Demo.Elapsed, r.Elapsed())
	return b.String()
}

func label(labels map[string]string, v string) string {
	if l, ok := labels[v]; ok {
		return l
	}
	return v
}
