package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/sony/gobreaker"

	"github.com/pr-poehali-dev/ai-promotion-design/pkg/logger"
)

// HTTPConfig configures HTTPAnalyzer.
type HTTPConfig struct {
	Endpoint string
	Timeout  time.Duration

	// Breaker settings; zero values take the defaults below.
	BreakerMaxRequests uint32
	BreakerInterval    time.Duration
	BreakerTimeout     time.Duration
	BreakerMinRequests uint32
	FailureThreshold   float64
}

func (c HTTPConfig) withDefaults() HTTPConfig {
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.BreakerMaxRequests == 0 {
		c.BreakerMaxRequests = 5
	}
	if c.BreakerInterval == 0 {
		c.BreakerInterval = 30 * time.Second
	}
	if c.BreakerTimeout == 0 {
		c.BreakerTimeout = 60 * time.Second
	}
	if c.BreakerMinRequests == 0 {
		c.BreakerMinRequests = 5
	}
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 0.8
	}
	return c
}

// HTTPAnalyzer posts requests to a real analysis service behind a circuit
// breaker. Only transient failures count against the breaker.
type HTTPAnalyzer struct {
	endpoint string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	log      *slog.Logger
}

// NewHTTPAnalyzer builds a client for cfg.Endpoint.
func NewHTTPAnalyzer(cfg HTTPConfig, log *slog.Logger) *HTTPAnalyzer {
	cfg = cfg.withDefaults()
	log = log.With(logger.Scope("analysis.http"))

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "analysis-backend",
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !Retryable(err)
		},
	})

	return &HTTPAnalyzer{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
		breaker:  breaker,
		log:      log,
	}
}

type wireResult struct {
	WordCount      int      `json:"wordCount"`
	Sentiment      string   `json:"sentiment"`
	Complexity     string   `json:"complexity"`
	KeyTerms       []string `json:"keyTerms"`
	ElapsedSeconds float64  `json:"elapsedSeconds"`
}

func (a *HTTPAnalyzer) Analyze(ctx context.Context, req Request) (*Result, error) {
	out, err := a.breaker.Execute(func() (any, error) {
		return a.do(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &BackendError{Kind: KindTransient, Err: err}
		}
		return nil, err
	}
	return out.(*Result), nil
}

func (a *HTTPAnalyzer) do(ctx context.Context, req Request) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &BackendError{Kind: KindValidation, Err: fmt.Errorf("encode request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &BackendError{Kind: KindFatal, Err: fmt.Errorf("build request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		// Client.Do only fails on transport problems, timeouts and
		// cancellation; all of them may succeed on a later attempt.
		return nil, &BackendError{Kind: KindTransient, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &BackendError{Kind: KindTransient, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &BackendError{Kind: KindTransient, StatusCode: resp.StatusCode, Err: errors.New(snippet(payload))}
	case resp.StatusCode >= 400:
		return nil, &BackendError{Kind: KindValidation, StatusCode: resp.StatusCode, Err: errors.New(snippet(payload))}
	case resp.StatusCode != http.StatusOK:
		return nil, &BackendError{Kind: KindFatal, StatusCode: resp.StatusCode, Err: errors.New("unexpected status")}
	}

	var wire wireResult
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, &BackendError{Kind: KindFatal, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	res, err := wire.toResult()
	if err != nil {
		return nil, &BackendError{Kind: KindFatal, StatusCode: resp.StatusCode, Err: err}
	}
	return res, nil
}

func (w wireResult) toResult() (*Result, error) {
	sentiment := Sentiment(w.Sentiment)
	if sentiment != SentimentPositive && sentiment != SentimentNeutral {
		return nil, fmt.Errorf("unknown sentiment %q", w.Sentiment)
	}
	complexity := Complexity(w.Complexity)
	if complexity != ComplexityHigh && complexity != ComplexityMedium {
		return nil, fmt.Errorf("unknown complexity %q", w.Complexity)
	}
	if len(w.KeyTerms) > MaxKeyTerms {
		return nil, fmt.Errorf("too many key terms: %d", len(w.KeyTerms))
	}
	if w.WordCount < 0 || w.ElapsedSeconds < 0 {
		return nil, errors.New("negative counters in response")
	}
	keyTerms := w.KeyTerms
	if keyTerms == nil {
		keyTerms = []string{}
	}
	return &Result{
		WordCount:      w.WordCount,
		Sentiment:      sentiment,
		Complexity:     complexity,
		KeyTerms:       keyTerms,
		ElapsedSeconds: w.ElapsedSeconds,
	}, nil
}

func snippet(b []byte) string {
	const limit = 200
	s := string(bytes.TrimSpace(b))
	if len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	if s == "" {
		s = "empty response body"
	}
	return s
}
