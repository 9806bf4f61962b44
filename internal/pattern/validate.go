package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MetaChars is the set of characters that mark text as regex-like.
const MetaChars = `\^$.*+?{}[]|()`

const (
	minPatternLen = 3
	maxPatternLen = 200
	minMetaCount  = 2
)

// IsValid reports whether p is non-empty and compiles under the regexp engine.
func IsValid(p string) bool {
	if p == "" {
		return false
	}
	_, err := regexp.Compile(p)
	return err == nil
}

// CountMeta returns how many runes of text belong to MetaChars.
func CountMeta(text string) int {
	n := 0
	for _, r := range text {
		if strings.ContainsRune(MetaChars, r) {
			n++
		}
	}
	return n
}

// LooksLikePattern reports whether text is 3 to 200 characters long and
// carries at least two metacharacters.
func LooksLikePattern(text string) bool {
	n := utf8.RuneCountInString(text)
	if n < minPatternLen || n > maxPatternLen {
		return false
	}
	return CountMeta(text) >= minMetaCount
}
