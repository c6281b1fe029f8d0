package analysis

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		count    int
		keyTerms []string
	}{
		{"four words", "the quick brown fox", 4, []string{"the", "quick", "brown"}},
		{"two words", "hello world", 2, []string{"hello", "world"}},
		{"one word", "  alone ", 1, []string{"alone"}},
		{"mixed whitespace", "a\tb\n\nc   d e", 5, []string{"a", "b", "c"}},
		{"blank", "   ", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, keyTerms := Derive(tt.text)
			assert.Equal(t, tt.count, count)
			assert.Equal(t, tt.keyTerms, keyTerms)
		})
	}
}

func TestFabricatedAnalyzer_Ranges(t *testing.T) {
	a := NewFabricatedAnalyzer(rand.NewPCG(1, 2))
	ctx := context.Background()

	sentiments := map[Sentiment]int{}
	complexities := map[Complexity]int{}
	for i := 0; i < 500; i++ {
		res, err := a.Analyze(ctx, Request{Text: "the quick brown fox"})
		require.NoError(t, err)

		assert.Equal(t, 4, res.WordCount)
		assert.Equal(t, []string{"the", "quick", "brown"}, res.KeyTerms)
		assert.GreaterOrEqual(t, res.ElapsedSeconds, 0.2)
		assert.Less(t, res.ElapsedSeconds, 0.7)
		assert.Equal(t, res.ElapsedSeconds, truncate2(res.ElapsedSeconds), "two decimals")

		sentiments[res.Sentiment]++
		complexities[res.Complexity]++
	}

	assert.Len(t, sentiments, 2, "both sentiments should appear")
	assert.Len(t, complexities, 2, "both complexities should appear")
	assert.Greater(t, complexities[ComplexityMedium], complexities[ComplexityHigh], "High is the rarer flip")
}

func TestFabricatedAnalyzer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFabricatedAnalyzer(nil).Analyze(ctx, Request{Text: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult_Elapsed(t *testing.T) {
	assert.Equal(t, "0.20", Result{ElapsedSeconds: 0.2}.Elapsed())
	assert.Equal(t, "0.69", Result{ElapsedSeconds: 0.69}.Elapsed())
}

func TestTruncate2(t *testing.T) {
	assert.Equal(t, 0.69, truncate2(0.69999))
	assert.Equal(t, 0.2, truncate2(0.2))
	assert.Equal(t, 0.45, truncate2(0.4567))
}
