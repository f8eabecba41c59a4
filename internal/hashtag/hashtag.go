// Package hashtag scans free text for inline #tag tokens.
//
// A hashtag is '#' followed by a letter and then letters, digits, hyphens or
// underscores. The '#' must sit at the start of the text or after a
// non-word character, so markdown headings ("# Title") and URL fragments
// ("page#section") never match.
package hashtag

import "regexp"

// Match represents a hashtag found in a body of text.
type Match struct {
	Name    string // tag name without the leading '#'
	Start   int    // offset of the '#'
	End     int
	Literal string
}

var re = regexp.MustCompile(`(^|[^\pL\pN_#])#(\pL[\pL\pN_-]*)`)

// FindAll finds every hashtag token in input, in document order.
func FindAll(input string) []Match {
	var out []Match

	for _, m := range re.FindAllStringSubmatchIndex(input, -1) {
		start := m[4] - 1 // back up from the name to the '#'
		end := m[5]
		out = append(out, Match{
			Name:    input[m[4]:m[5]],
			Start:   start,
			End:     end,
			Literal: input[start:end],
		})
	}

	return out
}

// Distinct returns the distinct tag names in input, in order of first
// appearance. Case folding is left to callers.
func Distinct(input string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range FindAll(input) {
		if _, ok := seen[m.Name]; ok {
			continue
		}
		seen[m.Name] = struct{}{}
		out = append(out, m.Name)
	}
	return out
}
