package importer

import (
	"path"
	"strings"

	"github.com/avigne/trove/internal/model"
)

// RunContext owns the run-scoped alias map built while objects are created
// and updated. Phase one (reconciliation) writes to it; phase two (link
// resolution) takes an immutable snapshot via Finalize, so the "alias map is
// complete before rewriting starts" invariant is structural.
type RunContext struct {
	exact  map[string]string // alias -> object id, case-sensitive
	lower  map[string]string // lower(alias) -> object id
	titles map[string]string // lower(title) -> object id
	tags   map[string]string // lower(hashtag name) -> tag object id

	touched []*model.Object // created or updated this run, in order
}

// NewRunContext creates an empty RunContext.
func NewRunContext() *RunContext {
	return &RunContext{
		exact:  make(map[string]string),
		lower:  make(map[string]string),
		titles: make(map[string]string),
		tags:   make(map[string]string),
	}
}

// Register adds aliases for an object id. The first registration of an alias
// wins; later collisions are ignored.
func (rc *RunContext) Register(id string, aliases ...string) {
	for _, a := range aliases {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, ok := rc.exact[a]; !ok {
			rc.exact[a] = id
		}
		low := strings.ToLower(a)
		if _, ok := rc.lower[low]; !ok {
			rc.lower[low] = id
		}
	}
}

// RegisterTitle records an object's display title for the last-resort
// title lookup.
func (rc *RunContext) RegisterTitle(id, title string) {
	low := strings.ToLower(strings.TrimSpace(title))
	if low == "" {
		return
	}
	if _, ok := rc.titles[low]; !ok {
		rc.titles[low] = id
	}
}

// RegisterTag records a promoted hashtag object.
func (rc *RunContext) RegisterTag(name, id string) {
	rc.tags[strings.ToLower(name)] = id
}

// Touch records an object as created or updated this run.
func (rc *RunContext) Touch(o *model.Object) {
	rc.touched = append(rc.touched, o)
}

// Touched returns the objects created or updated this run, in order.
func (rc *RunContext) Touched() []*model.Object { return rc.touched }

// Finalize returns the immutable resolution snapshot for the link pass.
func (rc *RunContext) Finalize() *Snapshot {
	return &Snapshot{
		exact:  rc.exact,
		lower:  rc.lower,
		titles: rc.titles,
		tags:   rc.tags,
	}
}

// Snapshot is the finalized alias map. The importer never mutates it after
// Finalize, so the link pass sees a stable view.
type Snapshot struct {
	exact  map[string]string
	lower  map[string]string
	titles map[string]string
	tags   map[string]string
}

// Resolve maps a raw reference target to an object id. Targets are cleaned
// (path-normalized, ".md" stripped) before lookup; resolution tries the
// exact alias, then the case-insensitive alias, then any object title.
func (s *Snapshot) Resolve(target string) (string, bool) {
	key := CleanTarget(target)
	if key == "" {
		return "", false
	}

	if id, ok := s.exact[key]; ok {
		return id, true
	}
	low := strings.ToLower(key)
	if id, ok := s.lower[low]; ok {
		return id, true
	}
	if id, ok := s.titles[low]; ok {
		return id, true
	}
	return "", false
}

// ResolveTag maps a hashtag name to a promoted tag object id.
func (s *Snapshot) ResolveTag(name string) (string, bool) {
	id, ok := s.tags[strings.ToLower(name)]
	return id, ok
}

// CleanTarget canonicalizes a raw reference target for alias lookup:
// percent-decoded spaces, path normalization, leading "./"/"../" segments
// dropped, markup extension stripped.
func CleanTarget(target string) string {
	t := strings.TrimSpace(strings.ReplaceAll(target, "%20", " "))
	t = path.Clean(strings.ReplaceAll(t, `\`, "/"))
	for strings.HasPrefix(t, "../") {
		t = strings.TrimPrefix(t, "../")
	}
	t = strings.TrimPrefix(t, "./")
	if t == "." || t == "/" {
		return ""
	}
	t = strings.TrimSuffix(t, ".md")
	t = strings.TrimSuffix(t, ".markdown")
	return t
}
