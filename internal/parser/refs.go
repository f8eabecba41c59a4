package parser

import (
	"regexp"
	"strings"

	"github.com/avigne/trove/internal/archive"
	"github.com/avigne/trove/internal/wikilink"
)

// RawRef is one cross-document reference as written in the source, before
// resolution against the run's alias map.
type RawRef struct {
	// Text is the display text of the reference.
	Text string

	// Target is the raw target: a relative document path for markdown
	// links, the bracket contents for wikilinks.
	Target string
}

// mdLinkRe matches [text](target). Targets with nested parens are rare in
// exports and not supported.
var mdLinkRe = regexp.MustCompile(`\[([^\]\[]*)\]\(([^)\s]+)\)`)

// ExtractRefs collects the raw references from a markdown body: markdown
// links whose target is a relative document path, and wikilinks. The list is
// flat and not deduplicated; dedup happens against the resolved alias map.
func ExtractRefs(markdown string) []RawRef {
	var refs []RawRef

	for _, m := range mdLinkRe.FindAllStringSubmatch(markdown, -1) {
		text, target := m[1], m[2]
		if isAbsoluteURL(target) || !archive.IsDocumentPath(target) {
			continue
		}
		if text == "" {
			text = target
		}
		refs = append(refs, RawRef{Text: text, Target: decodePath(target)})
	}

	for _, m := range wikilink.FindAll(markdown) {
		refs = append(refs, RawRef{Text: m.Text(), Target: m.Target})
	}

	return refs
}

func isAbsoluteURL(target string) bool {
	return strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:")
}

// decodePath undoes the percent-encoding export tools apply to spaces.
func decodePath(target string) string {
	return strings.ReplaceAll(target, "%20", " ")
}
