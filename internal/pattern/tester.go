package pattern

import "regexp"

// Outcome reports how a pattern fared against a sample. Matches is never nil
// so it serializes as an empty list.
type Outcome struct {
	Valid   bool     `json:"is_valid"`
	Matches []string `json:"matches"`
	Count   int      `json:"match_count"`
	Error   string   `json:"error,omitempty"`
	Info    *Info    `json:"pattern_info,omitempty"`
}

type Info struct {
	Pattern    string   `json:"pattern"`
	Groups     int      `json:"groups"`
	GroupNames []string `json:"group_names,omitempty"`
}

// Test compiles p and collects every non-overlapping match in sample, left
// to right. A match with participating capture groups contributes those
// groups in definition order; otherwise it contributes the whole match.
func Test(p, sample string) Outcome {
	re, err := regexp.Compile(p)
	if err != nil {
		return Outcome{Matches: []string{}, Error: err.Error()}
	}

	groups := re.NumSubexp()
	matches := []string{}
	for _, loc := range re.FindAllStringSubmatchIndex(sample, -1) {
		matches = appendMatch(matches, sample, loc, groups)
	}

	return Outcome{
		Valid:   true,
		Matches: matches,
		Count:   len(matches),
		Info: &Info{
			Pattern:    p,
			Groups:     groups,
			GroupNames: groupNames(re),
		},
	}
}

func appendMatch(dst []string, s string, loc []int, groups int) []string {
	participated := false
	for g := 1; g <= groups; g++ {
		start, end := loc[2*g], loc[2*g+1]
		if start < 0 {
			continue
		}
		dst = append(dst, s[start:end])
		participated = true
	}
	if !participated {
		dst = append(dst, s[loc[0]:loc[1]])
	}
	return dst
}

func groupNames(re *regexp.Regexp) []string {
	var names []string
	for _, n := range re.SubexpNames() {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}
