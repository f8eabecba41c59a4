// Package typeres maps a document's declared or folder-derived category onto
// the live schema, synthesizing a new type definition when nothing matches.
package typeres

import (
	"strings"
	"unicode"

	"github.com/avigne/trove/internal/schema"
	"github.com/avigne/trove/internal/slugs"
)

// defaultAliases maps common category names to canonical type ids. Keys are
// normalized at construction, so singular/plural and accented variants of
// the same word collapse into one entry.
var defaultAliases = map[string]string{
	"book":      "book",
	"books":     "book",
	"libro":     "book",
	"libros":    "book",
	"task":      "task",
	"tasks":     "task",
	"todo":      "task",
	"todos":     "task",
	"tarea":     "task",
	"tareas":    "task",
	"project":   "project",
	"projects":  "project",
	"proyecto":  "project",
	"proyectos": "project",
	"person":    "person",
	"people":    "person",
	"contact":   "person",
	"contacts":  "person",
	"persona":   "person",
	"personas":  "person",
	"note":      "page",
	"notes":     "page",
	"page":      "page",
	"pages":     "page",
	"nota":      "page",
	"notas":     "page",
	"article":   "page",
	"articles":  "page",
	"movie":     "movie",
	"movies":    "movie",
	"film":      "movie",
	"films":     "movie",
	"pelicula":  "movie",
	"peliculas": "movie",
	"recipe":    "recipe",
	"recipes":   "recipe",
	"receta":    "recipe",
	"recetas":   "recipe",
}

// Resolution is the outcome of resolving one document's category.
type Resolution struct {
	// TypeID is the resolved type id.
	TypeID string

	// NewType is the synthesized definition when no existing type matched.
	// It is shared across documents of the same run that resolve to it.
	NewType *schema.ObjectType
}

// IsNew reports whether the resolution synthesized a type.
func (r Resolution) IsNew() bool { return r.NewType != nil }

// Resolver resolves category strings against the live schema. It owns the
// run-scoped synthesized-type set, so 50 documents sharing an unknown
// category produce exactly one new type.
type Resolver struct {
	existing    []*schema.ObjectType
	aliases     map[string]string
	synthesized map[string]*schema.ObjectType
	order       []string // synthesized ids in first-seen order
}

// New creates a Resolver over the existing types. Scan order of existing is
// preserved: the first normalized match wins. extraAliases extends the
// built-in alias table (normalized, existing entries not overridden).
func New(existing []*schema.ObjectType, extraAliases map[string]string) *Resolver {
	aliases := make(map[string]string, len(defaultAliases)+len(extraAliases))
	for k, v := range defaultAliases {
		aliases[slugs.Normalize(k)] = v
	}
	for k, v := range extraAliases {
		key := slugs.Normalize(k)
		if _, ok := aliases[key]; !ok {
			aliases[key] = v
		}
	}

	return &Resolver{
		existing:    existing,
		aliases:     aliases,
		synthesized: make(map[string]*schema.ObjectType),
	}
}

// Resolve maps a document's category onto a type id.
//
// The declared type field is preferred over the folder hint. For each
// candidate, in priority order: the alias table, then a normalized match
// against existing (and already-synthesized) types. If neither candidate
// matches, a new type is synthesized from the declared-or-hint string.
func (r *Resolver) Resolve(categoryHint, declaredType string) Resolution {
	candidates := make([]string, 0, 2)
	if strings.TrimSpace(declaredType) != "" {
		candidates = append(candidates, declaredType)
	}
	if strings.TrimSpace(categoryHint) != "" {
		candidates = append(candidates, categoryHint)
	}
	if len(candidates) == 0 {
		candidates = append(candidates, "page")
	}

	for _, c := range candidates {
		norm := slugs.Normalize(c)

		if canonical, ok := r.aliases[norm]; ok {
			if t := r.findExisting(canonical); t != nil {
				return Resolution{TypeID: t.ID}
			}
			// Canonical type not in the schema yet: synthesize it under
			// the canonical id so later documents and imports agree.
			return Resolution{TypeID: canonical, NewType: r.synthesize(canonical, c)}
		}

		for _, t := range r.existing {
			if matchesType(t, norm) {
				return Resolution{TypeID: t.ID}
			}
		}
		for _, id := range r.order {
			if t := r.synthesized[id]; matchesType(t, norm) {
				return Resolution{TypeID: t.ID}
			}
		}
	}

	source := candidates[0]
	id := slugs.Slug(source)
	if id == "" {
		id = "page"
	}
	return Resolution{TypeID: id, NewType: r.synthesize(id, displayName(categoryHint, source))}
}

// Synthesized returns the run's synthesized types in first-seen order.
func (r *Resolver) Synthesized() []*schema.ObjectType {
	out := make([]*schema.ObjectType, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.synthesized[id])
	}
	return out
}

func (r *Resolver) findExisting(id string) *schema.ObjectType {
	for _, t := range r.existing {
		if t.ID == id {
			return t
		}
	}
	return r.synthesized[id]
}

// synthesize returns the run's type for id, creating it on first use.
func (r *Resolver) synthesize(id, name string) *schema.ObjectType {
	if t, ok := r.synthesized[id]; ok {
		return t
	}

	display := capitalize(slugs.StripPlural(strings.TrimSpace(name)))
	if display == "" {
		display = capitalize(id)
	}
	t := &schema.ObjectType{
		ID:         id,
		Name:       display,
		NamePlural: display + "s",
		Icon:       "📄",
		Color:      schema.ColorFor(id),
	}
	r.synthesized[id] = t
	r.order = append(r.order, id)
	return t
}

func matchesType(t *schema.ObjectType, norm string) bool {
	return slugs.Normalize(t.ID) == norm ||
		slugs.Normalize(t.Name) == norm ||
		slugs.Normalize(t.NamePlural) == norm
}

// displayName prefers the category hint for the human-facing name, since
// declared type fields are often lower-case slugs already.
func displayName(categoryHint, fallback string) string {
	if strings.TrimSpace(categoryHint) != "" {
		return categoryHint
	}
	return fallback
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
