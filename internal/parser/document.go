package parser

import (
	"fmt"
	"path"
	"strings"

	"github.com/avigne/trove/internal/archive"
)

// genericContainers are folder names that carry no category information.
// When the immediate parent matches one of them the category hint walks one
// level further up.
var genericContainers = map[string]bool{
	"export":  true,
	"content": true,
	"files":   true,
	"notes":   true,
}

// Document is a parsed export document. It lives for one import run: the
// type resolver, property extractor and reconciliation engine consume it,
// then it is discarded.
type Document struct {
	// Path is the archive entry path.
	Path string

	// BaseName is the file name without extension.
	BaseName string

	// CategoryHint is the folder-derived type guess.
	CategoryHint string

	// DeclaredType is the metadata "type" field, if present.
	DeclaredType string

	// Title is the metadata "title" field, falling back to BaseName.
	Title string

	// Tags are the metadata "tags", normalized to strings.
	Tags []string

	// Meta is declared metadata with the reserved keys left in place; the
	// property extractor skips them.
	Meta map[string]interface{}

	// BodyMarkdown is the raw markdown body (after the frontmatter block).
	BodyMarkdown string

	// BodyHTML is the body converted to the rich-text form.
	BodyHTML string

	// BodyText is the plain-text body.
	BodyText string

	// RawRefs are the cross-document references found in the body.
	RawRefs []RawRef
}

// Parse parses one archive document. Metadata and body-conversion failures
// degrade gracefully: the returned warnings describe them and the document
// is still usable.
func Parse(entry archive.Document) (*Document, []string) {
	var warnings []string

	meta, body, err := SplitFrontmatter(string(entry.Data))
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("%s: %v", entry.Path, err))
	}
	if meta == nil {
		meta = map[string]interface{}{}
	}

	doc := &Document{
		Path:         entry.Path,
		BaseName:     baseName(entry.Path),
		CategoryHint: CategoryHint(entry.Path),
		Meta:         meta,
		BodyMarkdown: body,
	}

	if s, ok := meta["type"].(string); ok {
		doc.DeclaredType = strings.TrimSpace(s)
	}
	if s, ok := meta["title"].(string); ok && strings.TrimSpace(s) != "" {
		doc.Title = strings.TrimSpace(s)
	} else {
		doc.Title = doc.BaseName
	}
	doc.Tags = metaTags(meta["tags"])

	html, err := RenderHTML(body)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("%s: body conversion failed: %v", entry.Path, err))
	}
	doc.BodyHTML = html
	doc.BodyText = PlainText(body)
	doc.RawRefs = ExtractRefs(body)

	return doc, warnings
}

// CategoryHint derives the category from the path segment immediately
// enclosing the file, walking further up past generic container names.
func CategoryHint(entryPath string) string {
	dir := path.Dir(entryPath)
	for dir != "." && dir != "/" {
		seg := path.Base(dir)
		if !genericContainers[strings.ToLower(seg)] {
			return seg
		}
		dir = path.Dir(dir)
	}
	return ""
}

func baseName(entryPath string) string {
	base := path.Base(entryPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// metaTags normalizes a frontmatter tags value to a string list. Scalars
// become a single tag; comma-separated strings are split.
func metaTags(v interface{}) []string {
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(strings.TrimPrefix(s, "#"))
		if s != "" {
			out = append(out, s)
		}
	}

	switch t := v.(type) {
	case string:
		for _, part := range strings.Split(t, ",") {
			add(part)
		}
	case []interface{}:
		for _, item := range t {
			add(fmt.Sprintf("%v", item))
		}
	}
	return out
}
