// Package analysis implements the demo "text analysis" card: a small state
// machine that accepts text, waits, and then reports a result produced by an
// Analyzer. The default analyzer fabricates its answer; a real backend can be
// plugged in without changing the state machine.
package analysis

import (
	"fmt"
	"strings"
	"time"
)

// State of the simulator.
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateComplete   State = "complete"
	// StateErrored is only reachable when a real backend fails.
	StateErrored State = "errored"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
)

type Complexity string

const (
	ComplexityHigh   Complexity = "High"
	ComplexityMedium Complexity = "Medium"
)

// MaxKeyTerms is how many leading tokens are reported as key terms.
const MaxKeyTerms = 3

// Request is one submission. Text is non-empty after trimming.
type Request struct {
	Text string `json:"text"`
}

// Result is the report shown on the card.
type Result struct {
	WordCount      int        `json:"wordCount"`
	Sentiment      Sentiment  `json:"sentiment"`
	Complexity     Complexity `json:"complexity"`
	KeyTerms       []string   `json:"keyTerms"`
	ElapsedSeconds float64    `json:"elapsedSeconds"`
}

// Elapsed formats ElapsedSeconds with two decimals.
func (r Result) Elapsed() string {
	return fmt.Sprintf("%.2f", r.ElapsedSeconds)
}

// ErrorInfo is the renderable form of a backend failure.
type ErrorInfo struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Snapshot is an immutable view of the simulator.
type Snapshot struct {
	State       State      `json:"state"`
	Result      *Result    `json:"result,omitempty"`
	Error       *ErrorInfo `json:"error,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

// CanSubmit reports whether the submit control should be enabled.
func (s Snapshot) CanSubmit() bool {
	return s.State != StateProcessing
}

// Tokens splits text on runs of whitespace.
func Tokens(text string) []string {
	return strings.Fields(text)
}

// Derive fills the fields that follow from the text alone.
func Derive(text string) (wordCount int, keyTerms []string) {
	tokens := Tokens(text)
	n := min(len(tokens), MaxKeyTerms)
	keyTerms = make([]string, n)
	copy(keyTerms, tokens[:n])
	return len(tokens), keyTerms
}
