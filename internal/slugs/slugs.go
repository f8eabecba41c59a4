// Package slugs provides canonical slugification and name-normalization
// helpers used across Trove.
//
// Two related but distinct transformations live here:
//   - Slug: used for type ids synthesized from category names. Built on
//     gosimple/slug so diacritics are transliterated ("Clásicos" -> "clasicos").
//   - Normalize: used when matching free-form category names against the live
//     schema. Lower-cases, strips diacritics, and strips one trailing plural
//     suffix ("-es" then "-s", checked in that order, applied once).
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Slug converts a string to a URL-safe slug appropriate for type ids.
func Slug(s string) string {
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
	}
	return slugged
}

// Normalize canonicalizes a category or type name for matching purposes.
//
// The plural strip is unconditional: s-final singular words ("atlas") are
// mis-normalized. This matches how category folders are named in the exports
// we ingest and keeps matching symmetric across singular/plural folder names.
func Normalize(s string) string {
	n := goslug.Make(strings.TrimSpace(s))
	n = strings.ReplaceAll(n, "-", " ")
	return StripPlural(n)
}

// StripPlural removes one trailing plural suffix: "-es" first, then "-s".
// Applied at most once; strings at or below the suffix length are unchanged.
func StripPlural(s string) string {
	if strings.HasSuffix(s, "es") && len(s) > 2 {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "s") && len(s) > 1 {
		return s[:len(s)-1]
	}
	return s
}
