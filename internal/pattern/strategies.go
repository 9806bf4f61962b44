package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Strategy names reported in Result.Strategy.
const (
	StrategyLabeled         = "labeled"
	StrategyDelimited       = "delimited"
	StrategyHeuristicLine   = "heuristic_line"
	StrategyLongestToken    = "longest_token"
	StrategySubstringScan   = "substring_scan"
	StrategyKeywordFallback = "keyword_fallback"
	StrategyCatchAll        = "catch_all"
)

// Strategy proposes candidates from a reply, most preferred first.
// Candidates are not yet known to compile.
type Strategy struct {
	Name       string
	Candidates func(reply string) []string
}

var (
	fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z0-9_-]*[ \\t]*\\n(.*?)```")
	inlineCodeRe  = regexp.MustCompile("`([^`\\n]+)`")
	slashRe       = regexp.MustCompile(`/([^/\n]+)/`)

	metaRunRe = regexp.MustCompile(`[\\^$.*+?{}\[\]|()]{3,}[^\\^$.*+?{}\[\]|()\s]*`)
)

// DefaultStrategies returns the extraction cascade in priority order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: StrategyLabeled, Candidates: labeledCandidates},
		{Name: StrategyDelimited, Candidates: delimitedCandidates},
		{Name: StrategyHeuristicLine, Candidates: heuristicLineCandidates},
		{Name: StrategyLongestToken, Candidates: longestTokenCandidates},
		{Name: StrategySubstringScan, Candidates: substringScanCandidates},
		{Name: StrategyKeywordFallback, Candidates: keywordCandidates},
	}
}

// labelMatcher finds one label at the start of a line or anywhere in a line.
type labelMatcher struct {
	prefix   *regexp.Regexp
	anywhere *regexp.Regexp
}

func newLabelMatcher(label string) labelMatcher {
	return labelMatcher{
		prefix:   regexp.MustCompile(`(?i)^` + label + `\s*:\s*(.+)$`),
		anywhere: regexp.MustCompile(`(?im)` + label + `[ \t]*:[ \t]*(.+)$`),
	}
}

// labelMatchers are in rank order: a REGEX label beats a Pattern label
// wherever each appears in the reply.
var labelMatchers = []labelMatcher{
	newLabelMatcher("regex"),
	newLabelMatcher("pattern"),
	newLabelMatcher("expression"),
}

// labeledCandidates returns label values ordered by label rank, then by
// position. For one label, lines that start with it come before mid-line hits.
// The value is the trimmed remainder of the line, taken as is.
func labeledCandidates(reply string) []string {
	lines := strings.Split(reply, "\n")

	var out []string
	for _, lm := range labelMatchers {
		for _, line := range lines {
			if m := lm.prefix.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				out = appendLabelValue(out, m[1])
			}
		}
		for _, m := range lm.anywhere.FindAllStringSubmatch(reply, -1) {
			out = appendLabelValue(out, m[1])
		}
	}
	return out
}

func appendLabelValue(out []string, raw string) []string {
	if v := strings.TrimSpace(raw); v != "" {
		out = append(out, v)
	}
	return out
}

// delimitedCandidates returns fenced code block lines, then inline backtick
// spans, then /slash/ spans that stay on one line.
func delimitedCandidates(reply string) []string {
	var out []string
	for _, m := range fencedBlockRe.FindAllStringSubmatch(reply, -1) {
		for _, line := range strings.Split(m[1], "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
	}
	for _, re := range []*regexp.Regexp{inlineCodeRe, slashRe} {
		for _, m := range re.FindAllStringSubmatch(reply, -1) {
			if v := strings.TrimSpace(m[1]); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func heuristicLineCandidates(reply string) []string {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if LooksLikePattern(line) {
			return []string{line}
		}
	}
	return nil
}

// longestTokenCandidates picks the longest whitespace-separated token that
// looks like a pattern. Ties go to the earliest token.
func longestTokenCandidates(reply string) []string {
	var best string
	bestLen := 0
	for _, tok := range strings.Fields(reply) {
		n := utf8.RuneCountInString(tok)
		if n <= 5 || n <= bestLen || !LooksLikePattern(tok) {
			continue
		}
		best, bestLen = tok, n
	}
	if best == "" {
		return nil
	}
	return []string{best}
}

func substringScanCandidates(reply string) []string {
	if m := metaRunRe.FindString(reply); m != "" {
		return []string{m}
	}
	return nil
}

func keywordCandidates(reply string) []string {
	lower := strings.ToLower(reply)
	for _, f := range fallbackTable {
		if strings.Contains(lower, f.Keyword) {
			return []string{f.Pattern}
		}
	}
	return nil
}
