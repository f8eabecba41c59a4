package importer

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/avigne/trove/internal/archive"
	"github.com/avigne/trove/internal/hashtag"
	"github.com/avigne/trove/internal/wikilink"
)

// anchorRe matches the anchors goldmark emits for markdown links.
var anchorRe = regexp.MustCompile(`<a href="([^"]+)">([^<]*)</a>`)

// refMarkerRe finds resolved reference markers in a rewritten body.
var refMarkerRe = regexp.MustCompile(`data-ref="([^"]+)"`)

// RewriteResult is the outcome of rewriting one object's body.
type RewriteResult struct {
	Body       string
	Outbound   []string // resolved target ids, deduplicated, in order
	Unresolved int      // number of reference mentions that failed to resolve
}

// RewriteBody rewrites reference markup in a rich-text body against the
// finalized alias snapshot. Hashtag tokens are rewritten first (when
// enabled), then wikilinks, then document anchors. The outbound id list is
// recomputed from the rewritten body, never carried over.
func RewriteBody(body string, snap *Snapshot, rewriteHashtags bool) RewriteResult {
	res := RewriteResult{}

	if rewriteHashtags {
		body = rewriteHashtagTokens(body, snap)
	}
	body = rewriteWikilinks(body, snap, &res.Unresolved)
	body = rewriteAnchors(body, snap, &res.Unresolved)

	res.Body = body
	res.Outbound = scanOutbound(body)
	return res
}

// refSpan renders a resolved reference span.
func refSpan(id, text string) string {
	return fmt.Sprintf(`<a data-ref="%s">%s</a>`, html.EscapeString(id), html.EscapeString(text))
}

// brokenSpan renders a visibly-broken reference span that still carries the
// original text and target.
func brokenSpan(target, text string) string {
	return fmt.Sprintf(`<span data-broken-ref="%s">%s</span>`,
		html.EscapeString(target), html.EscapeString(text))
}

func rewriteHashtagTokens(body string, snap *Snapshot) string {
	matches := hashtag.FindAll(body)
	if len(matches) == 0 {
		return body
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		id, ok := snap.ResolveTag(m.Name)
		if !ok {
			continue
		}
		b.WriteString(body[last:m.Start])
		b.WriteString(fmt.Sprintf(`<a data-ref="%s" data-tag="1">%s</a>`,
			html.EscapeString(id), html.EscapeString(m.Literal)))
		last = m.End
	}
	b.WriteString(body[last:])
	return b.String()
}

func rewriteWikilinks(body string, snap *Snapshot, unresolved *int) string {
	matches := wikilink.FindAll(body)
	if len(matches) == 0 {
		return body
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(body[last:m.Start])
		if id, ok := snap.Resolve(m.Target); ok {
			b.WriteString(refSpan(id, m.Text()))
		} else {
			*unresolved++
			b.WriteString(brokenSpan(m.Target, m.Text()))
		}
		last = m.End
	}
	b.WriteString(body[last:])
	return b.String()
}

func rewriteAnchors(body string, snap *Snapshot, unresolved *int) string {
	return anchorRe.ReplaceAllStringFunc(body, func(match string) string {
		sub := anchorRe.FindStringSubmatch(match)
		href, text := html.UnescapeString(sub[1]), html.UnescapeString(sub[2])

		if strings.Contains(href, "://") || !archive.IsDocumentPath(strings.ReplaceAll(href, "%20", " ")) {
			return match
		}
		if id, ok := snap.Resolve(href); ok {
			return refSpan(id, text)
		}
		*unresolved++
		return brokenSpan(CleanTarget(href), text)
	})
}

// scanOutbound recomputes the outbound reference list from the body's
// resolved-reference markers.
func scanOutbound(body string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range refMarkerRe.FindAllStringSubmatch(body, -1) {
		id := html.UnescapeString(m[1])
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
