package analysis

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
)

// Analyzer produces a report for a request. Implementations must honour ctx
// cancellation.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (*Result, error)
}

// FabricatedAnalyzer makes up sentiment, complexity and timing with
// independent coin flips. Only word count and key terms depend on the text.
type FabricatedAnalyzer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewFabricatedAnalyzer draws from src, or from a randomly seeded source
// when src is nil.
func NewFabricatedAnalyzer(src rand.Source) *FabricatedAnalyzer {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &FabricatedAnalyzer{rnd: rand.New(src)}
}

func (a *FabricatedAnalyzer) Analyze(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wordCount, keyTerms := Derive(req.Text)

	a.mu.Lock()
	positive := a.rnd.Float64() > 0.5
	high := a.rnd.Float64() > 0.6
	elapsed := a.rnd.Float64()*0.5 + 0.2
	a.mu.Unlock()

	res := &Result{
		WordCount:      wordCount,
		Sentiment:      SentimentNeutral,
		Complexity:     ComplexityMedium,
		KeyTerms:       keyTerms,
		ElapsedSeconds: truncate2(elapsed),
	}
	if positive {
		res.Sentiment = SentimentPositive
	}
	if high {
		res.Complexity = ComplexityHigh
	}
	return res, nil
}

// truncate2 keeps two decimals without rounding up, so a value below 0.7
// never becomes 0.70. The epsilon absorbs binary error in values such as
// 0.29*100.
func truncate2(v float64) float64 {
	return math.Floor(v*100+1e-9) / 100
}
