package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/content"
)

func Research() g.Node {
	return Section(
		ID(content.SectionResearch),
		Class("py-20 px-4"),
		Div(
			Class("container mx-auto max-w-6xl"),
			sectionHeading(content.ResearchHeading),
			Div(
				Class("grid md:grid-cols-2 gap-8 mb-12"),
				accuracyChart(),
				volumeChart(),
			),
			taskComparison(),
			researchStats(),
			publications(),
		),
	)
}

func chartTitle(icon, title, subtitle string) g.Node {
	return g.Group([]g.Node{
		H3(Class("card-title flex items-center gap-2"), Icon(icon+" text-primary size-6", ""), g.Text(title)),
		P(Class("text-sm text-base-content/70"), g.Text(subtitle)),
	})
}

func accuracyChart() g.Node {
	return card("animate-fade-in",
		chartTitle("lucide--trending-up", "Рост точности модели", "Прогресс за последние 3 года"),
		Div(
			Class("space-y-4 mt-4"),
			mapIndexed(content.Accuracy, func(i int, p content.AccuracyPoint) g.Node {
				return Div(
					Class("space-y-2 animate-fade-in"),
					animationDelay(i, 0.2),
					Div(
						Class("flex justify-between text-sm font-medium"),
						Span(g.Text(p.Year)),
						Span(Class("text-primary"), g.Text(formatNumber(p.Accuracy)+"%")),
					),
					Div(
						Class("h-3 bg-base-200 rounded-full overflow-hidden"),
						Div(
							Class("h-full "+p.Color+" transition-all duration-1000 ease-out"),
							Style("width: "+formatNumber(p.Accuracy)+"%"),
						),
					),
				)
			}),
		),
	)
}

func volumeChart() g.Node {
	return card("animate-fade-in",
		chartTitle("lucide--bar-chart-3", "Объём обработанных данных", "Петабайты в год"),
		Div(
			Class("h-64 flex items-end justify-around gap-4 mt-4"),
			mapIndexed(content.Volume, func(i int, p content.VolumePoint) g.Node {
				return Div(
					Class("flex-1 h-full flex flex-col items-center justify-end gap-2 animate-scale-in"),
					animationDelay(i, 0.15),
					Div(Class("text-sm font-bold text-primary"), g.Textf("%d ПБ", p.Petabytes)),
					Div(
						Class("w-full bg-linear-to-t from-primary to-secondary rounded-t-lg transition-all duration-1000"),
						Style(fmt.Sprintf("height: %d%%", p.Height)),
					),
					Div(Class("text-xs text-base-content/60 font-medium"), g.Text(p.Year)),
				)
			}),
		),
	)
}

func taskComparison() g.Node {
	return card("mb-12 animate-fade-in",
		chartTitle("lucide--activity", "Производительность по задачам", "Сравнение с традиционными методами"),
		Div(
			Class("space-y-6 mt-4"),
			mapIndexed(content.TaskScores, func(i int, s content.TaskScore) g.Node {
				return Div(
					Class("space-y-2 animate-fade-in"),
					animationDelay(i, 0.1),
					Div(
						Class("flex justify-between text-sm font-medium"),
						Span(g.Text(s.Task)),
						Div(
							Class("flex gap-4"),
							Span(Class("text-primary"), g.Textf("AI: %d%%", s.AI)),
							Span(Class("text-base-content/60"), g.Textf("Традиц.: %d%%", s.Traditional)),
						),
					),
					Div(
						Class("relative h-6"),
						Div(
							Class("absolute inset-0 bg-base-200 rounded-full overflow-hidden"),
							Div(Class("h-full bg-base-content/30"), Style(fmt.Sprintf("width: %d%%", s.Traditional))),
						),
						Div(
							Class("absolute inset-0 rounded-full overflow-hidden"),
							Div(Class("h-full bg-linear-to-r from-primary to-secondary opacity-80"), Style(fmt.Sprintf("width: %d%%", s.AI))),
						),
					),
				)
			}),
		),
	)
}

func researchStats() g.Node {
	return Div(
		Class("grid md:grid-cols-3 gap-6 mb-12"),
		mapIndexed(content.Stats, func(i int, s content.Stat) g.Node {
			return Div(
				Class("card border border-base-300 text-center animate-scale-in"),
				animationDelay(i, 0.1),
				Div(
					Class("card-body items-center"),
					Icon(s.Icon+" text-primary size-10 mb-3", ""),
					Div(Class("text-4xl font-bold mb-1"), g.Text(s.Value)),
					Div(Class("text-sm text-base-content/60 mb-2"), g.Text(s.Label)),
					Div(
						Class("text-xs text-primary font-medium flex items-center justify-center gap-1"),
						Icon("lucide--trending-up size-3.5", ""),
						g.Text(s.Trend),
					),
				),
			)
		}),
	)
}

func publications() g.Node {
	return Div(
		Class("space-y-6 max-w-3xl mx-auto"),
		H3(Class("text-2xl font-bold text-center mb-8"), g.Text("Ключевые публикации")),
		mapIndexed(content.Publications, func(i int, p content.Publication) g.Node {
			return Div(
				Class("card border border-base-300 hover:shadow-lg transition-all duration-300 animate-fade-in"),
				animationDelay(i, 0.1),
				Div(
					Class("card-body flex-row justify-between items-start"),
					Div(
						Class("flex-1"),
						H4(Class("card-title text-xl mb-2"), g.Text(p.Title)),
						Div(
							Class("flex flex-wrap gap-4 mt-2 text-sm text-base-content/60"),
							Span(Class("flex items-center gap-1"), Icon("lucide--book-open size-4", ""), g.Text(p.Journal)),
							Span(Class("flex items-center gap-1"), Icon("lucide--calendar size-4", ""), g.Text(p.Year)),
							Span(Class("flex items-center gap-1"), Icon("lucide--quote size-4", ""), g.Textf("%s цитирований", p.Citations)),
						),
					),
					Div(
						Class("text-center ml-4"),
						Div(Class("text-3xl font-bold text-primary"), g.Text(formatNumber(p.Impact))),
						Div(Class("text-xs text-base-content/60"), g.Text("Impact Factor")),
					),
				),
			)
		}),
	)
}
