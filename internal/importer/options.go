// Package importer implements the bulk import/reconciliation pipeline: it
// ingests an exported archive of markdown documents and merges them into the
// live object graph.
package importer

import (
	"fmt"

	"github.com/avigne/trove/internal/model"
)

// ConflictPolicy governs how an incoming document is reconciled against an
// existing object with the same type and title.
type ConflictPolicy string

const (
	// ConflictSkip keeps the existing object untouched and records the
	// document as skipped. The existing id still enters the alias map.
	ConflictSkip ConflictPolicy = "skip"

	// ConflictMerge unions tags, shallow-merges properties (incoming keys
	// win) and replaces the body.
	ConflictMerge ConflictPolicy = "merge"

	// ConflictOverwrite fully replaces properties, tags and body.
	ConflictOverwrite ConflictPolicy = "overwrite"

	// ConflictDuplicate always creates a new object, suffixing the title
	// when an object with the same title already exists.
	ConflictDuplicate ConflictPolicy = "duplicate"
)

// ParseConflictPolicy validates a policy string.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(s) {
	case ConflictSkip, ConflictMerge, ConflictOverwrite, ConflictDuplicate:
		return ConflictPolicy(s), nil
	case "":
		return ConflictSkip, nil
	}
	return "", fmt.Errorf("unknown conflict policy %q (skip, merge, overwrite, duplicate)", s)
}

// HashtagMode controls what happens to inline #tags in document bodies.
type HashtagMode string

const (
	// HashtagMentions promotes each distinct hashtag to a tag object and
	// rewrites the token into a reference span.
	HashtagMentions HashtagMode = "mentions"

	// HashtagTags attaches hashtags to the object's own tag list.
	HashtagTags HashtagMode = "tags"

	// HashtagPlain leaves hashtag text untouched.
	HashtagPlain HashtagMode = "plain"
)

// ParseHashtagMode validates a hashtag mode string.
func ParseHashtagMode(s string) (HashtagMode, error) {
	switch HashtagMode(s) {
	case HashtagMentions, HashtagTags, HashtagPlain:
		return HashtagMode(s), nil
	case "":
		return HashtagPlain, nil
	}
	return "", fmt.Errorf("unknown hashtag mode %q (mentions, tags, plain)", s)
}

// Options configures one import run.
type Options struct {
	// Conflicts is the conflict policy, applied uniformly to the run.
	Conflicts ConflictPolicy

	// ImportMedia enables the media upload side-path.
	ImportMedia bool

	// Hashtags selects the hashtag handling mode.
	Hashtags HashtagMode

	// ExtraAliases extends the category alias table for type resolution.
	ExtraAliases map[string]string

	// Progress receives synchronous progress reports; may be nil.
	Progress model.ProgressFunc
}
