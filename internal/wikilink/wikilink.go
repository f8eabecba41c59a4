// Package wikilink provides canonical parsing/scanning of wiki-style links.
//
// Grammar:
//
//	[[target]]
//	[[target|display text]]
//
// The target and display text are trimmed of surrounding whitespace. This
// package does not understand markdown structure; callers decide which
// regions of a document are scanned.
package wikilink

import (
	"regexp"
	"strings"
)

// Match represents a wikilink found in a body of text.
type Match struct {
	Target      string
	DisplayText string // empty when the link has no |display part
	Start       int
	End         int
	Literal     string
}

// re matches [[target]] or [[target|display]].
// The target cannot contain [ or ] so nested brackets never match.
var re = regexp.MustCompile(`\[\[([^\]\[|]+)(?:\|([^\]]+))?\]\]`)

// Text returns the display text if present, else the target.
func (m Match) Text() string {
	if m.DisplayText != "" {
		return m.DisplayText
	}
	return m.Target
}

// FindAll finds every wikilink in input, in document order.
func FindAll(input string) []Match {
	var out []Match

	for _, m := range re.FindAllStringSubmatchIndex(input, -1) {
		start, end := m[0], m[1]

		target := strings.TrimSpace(input[m[2]:m[3]])
		if target == "" {
			continue
		}

		var display string
		if m[4] >= 0 && m[5] >= 0 {
			display = strings.TrimSpace(input[m[4]:m[5]])
		}

		out = append(out, Match{
			Target:      target,
			DisplayText: display,
			Start:       start,
			End:         end,
			Literal:     input[start:end],
		})
	}

	return out
}

// ParseExact parses a string that is exactly a wikilink literal.
func ParseExact(s string) (target, display string, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[[") || !strings.HasSuffix(s, "]]") {
		return "", "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "[["), "]]")
	parts := strings.SplitN(inner, "|", 2)
	target = strings.TrimSpace(parts[0])
	if target == "" || strings.ContainsAny(target, "[]") {
		return "", "", false
	}
	if len(parts) == 2 {
		display = strings.TrimSpace(parts[1])
	}
	return target, display, true
}
