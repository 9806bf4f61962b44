// Package pattern recovers a usable regular expression from free-form
// generation replies and tests expressions against sample text.
package pattern

import (
	"fmt"
	"strings"
)

// NotFoundSentinel is what callers see when nothing could be extracted.
const NotFoundSentinel = "Could not extract regex pattern"

// MatchAllPattern is returned by the match-all catch-all policy.
const MatchAllPattern = ".*"

// CatchAll decides what Extract returns when every strategy fails.
type CatchAll int

const (
	// CatchAllSentinel reports NotFound.
	CatchAllSentinel CatchAll = iota
	// CatchAllMatchAll reports MatchAllPattern as found.
	CatchAllMatchAll
)

func (c CatchAll) String() string {
	switch c {
	case CatchAllMatchAll:
		return "match_all"
	default:
		return "sentinel"
	}
}

// ParseCatchAll maps "sentinel" or "match_all" to a policy. An empty string
// selects the sentinel.
func ParseCatchAll(s string) (CatchAll, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sentinel":
		return CatchAllSentinel, nil
	case "match_all", "match-all", ".*":
		return CatchAllMatchAll, nil
	default:
		return CatchAllSentinel, fmt.Errorf("unknown catch-all policy %q", s)
	}
}

// Result is the outcome of an extraction. Pattern is only meaningful when
// Found is true.
type Result struct {
	Pattern  string `json:"pattern,omitempty"`
	Found    bool   `json:"found"`
	Strategy string `json:"strategy,omitempty"`
}

// String returns the pattern or NotFoundSentinel.
func (r Result) String() string {
	if !r.Found {
		return NotFoundSentinel
	}
	return r.Pattern
}

// Extractor runs an ordered cascade of strategies. It holds no mutable state
// and is safe for concurrent use.
type Extractor struct {
	strategies []Strategy
	catchAll   CatchAll
}

type Option func(*Extractor)

// WithCatchAll sets the terminal policy.
func WithCatchAll(c CatchAll) Option {
	return func(e *Extractor) {
		e.catchAll = c
	}
}

// WithStrategies replaces the default cascade.
func WithStrategies(s ...Strategy) Option {
	return func(e *Extractor) {
		e.strategies = append([]Strategy(nil), s...)
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		strategies: DefaultStrategies(),
		catchAll:   CatchAllSentinel,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CatchAll returns the active terminal policy.
func (e *Extractor) CatchAll() CatchAll {
	return e.catchAll
}

// Extract returns the first candidate, in strategy order, that compiles.
func (e *Extractor) Extract(reply string) Result {
	text := strings.TrimSpace(lineEndings.Replace(reply))
	for _, s := range e.strategies {
		for _, c := range s.Candidates(text) {
			if IsValid(c) {
				return Result{Pattern: c, Found: true, Strategy: s.Name}
			}
		}
	}
	if e.catchAll == CatchAllMatchAll {
		return Result{Pattern: MatchAllPattern, Found: true, Strategy: StrategyCatchAll}
	}
	return Result{}
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

var defaultExtractor = NewExtractor()

// Extract runs the default cascade with the sentinel policy.
func Extract(reply string) Result {
	return defaultExtractor.Extract(reply)
}
