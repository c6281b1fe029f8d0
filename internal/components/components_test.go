package components

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/pr-poehali-dev/ai-promotion-design/internal/analysis"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/content"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/graph"
	"github.com/pr-poehali-dev/ai-promotion-design/internal/page"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestTopbar_HighlightsActiveSection(t *testing.T) {
	html := render(t, Topbar(content.NewCatalog().Sections(), "cases"))

	assert.Contains(t, html, `data-section="cases" aria-current="true" class="text-sm font-medium transition-colors hover:text-primary text-primary"`)
	assert.Contains(t, html, `data-section="home" class="text-sm font-medium transition-colors hover:text-primary text-base-content/60"`)
	assert.Equal(t, 1, strings.Count(html, `aria-current="true"`))
	for _, label := range []string{"Главная", "Технология", "Возможности", "Кейсы", "Исследования", "Контакты"} {
		assert.Contains(t, html, label)
	}
}

func TestNetworkGraph_OneLinePerEdge(t *testing.T) {
	gr := graph.Generate(rand.New(rand.NewPCG(3, 4)), 20)
	html := render(t, NetworkGraph(gr))

	assert.Equal(t, len(gr.Edges()), strings.Count(html, "<line "))
	assert.Equal(t, 20, strings.Count(html, "<circle "))
	assert.Contains(t, html, `viewBox="0 0 100 100"`)
}

func TestNetworkGraph_Empty(t *testing.T) {
	html := render(t, NetworkGraph(graph.Graph{}))

	assert.NotContains(t, html, "<line")
	assert.NotContains(t, html, "<circle")
}

func TestAnalysisStatus(t *testing.T) {
	result := &analysis.Result{
		WordCount:      4,
		Sentiment:      analysis.SentimentNeutral,
		Complexity:     analysis.ComplexityHigh,
		KeyTerms:       []string{"the", "quick", "brown"},
		ElapsedSeconds: 0.2,
	}

	tests := []struct {
		name     string
		snap     analysis.Snapshot
		contains []string
		missing  []string
	}{
		{
			name:     "idle",
			snap:     analysis.Snapshot{State: analysis.StateIdle},
			contains: []string{"Запустить анализ", `data-state="idle"`},
			missing:  []string{"disabled", "<pre", "Обработка..."},
		},
		{
			name:     "processing",
			snap:     analysis.Snapshot{State: analysis.StateProcessing},
			contains: []string{"Обработка...", "disabled", "animate-spin"},
			missing:  []string{"Запустить анализ", "<pre"},
		},
		{
			name: "complete",
			snap: analysis.Snapshot{State: analysis.StateComplete, Result: result},
			contains: []string{
				"Запустить анализ",
				"Обнаружено слов: 4",
				"Тональность: Нейтральная",
				"Уровень сложности: Высокий",
				"Ключевые термины: the, quick, brown",
				"за 0.20с",
			},
			missing: []string{"disabled"},
		},
		{
			name: "errored",
			snap: analysis.Snapshot{State: analysis.StateErrored, Error: &analysis.ErrorInfo{
				Kind:    analysis.KindTransient,
				Message: "backend unavailable",
			}},
			contains: []string{`data-error-kind="transient"`, "сервис анализа временно недоступен", "Запустить анализ"},
			missing:  []string{"<pre", "disabled", "backend unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, AnalysisStatus(tt.snap))
			assert.Contains(t, html, `id="`+AnalysisStatusID+`"`)
			for _, s := range tt.contains {
				assert.Contains(t, html, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, html, s)
			}
		})
	}
}

func TestReportText(t *testing.T) {
	got := ReportText(analysis.Result{
		WordCount:      2,
		Sentiment:      analysis.SentimentPositive,
		Complexity:     analysis.ComplexityMedium,
		KeyTerms:       []string{"hello", "world"},
		ElapsedSeconds: 0.5,
	})

	want := "Анализ текста завершён:\n\n" +
		"• Обнаружено слов: 2\n" +
		"• Тональность: Позитивная\n" +
		"• Уровень сложности: Средний\n" +
		"• Ключевые термины: hello, world\n\n" +
		"Нейросеть обработала запрос за 0.50с"
	assert.Equal(t, want, got)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "87", formatNumber(87))
	assert.Equal(t, "99.7", formatNumber(99.7))
	assert.Equal(t, "0.3", formatNumber(3*0.1))
	assert.Equal(t, "12.35", formatNumber(12.345678))
}

func TestLandingPage_RendersAllSections(t *testing.T) {
	ctrl := page.NewController("sess-42", page.Deps{
		Locator:  content.NewCatalog(),
		Analyzer: analysis.NewFabricatedAnalyzer(nil),
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer ctrl.Close()

	html := render(t, LandingPage(ctrl.State()))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `data-session="sess-42"`)
	for _, s := range ctrl.Sections() {
		assert.Contains(t, html, `<section id="`+s.ID+`"`, s.ID)
	}
	assert.Contains(t, html, "NeuroTech AI")
	assert.Contains(t, html, "HealthTech Corp")
	assert.Contains(t, html, "Nature Machine Intelligence")
	assert.Contains(t, html, `name="email"`)
	assert.Contains(t, html, "/static/js/page.js")
}

func TestLandingPage_ReflectsNavigation(t *testing.T) {
	ctrl := page.NewController("sess", page.Deps{
		Locator:  content.NewCatalog(),
		Analyzer: analysis.NewFabricatedAnalyzer(nil),
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer ctrl.Close()

	ctrl.Navigate(context.Background(), "research")
	html := render(t, Topbar(ctrl.Sections(), ctrl.State().Navigation.ActiveSectionID))

	assert.Contains(t, html, `data-section="research" aria-current="true"`)
}
