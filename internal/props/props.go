// Package props converts a document's declared metadata into typed property
// values against a resolved type, inferring kinds and synthesizing new
// property definitions for unrecognized keys.
package props

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/avigne/trove/internal/dates"
	"github.com/avigne/trove/internal/schema"
	"github.com/avigne/trove/internal/slugs"
)

// reservedKeys map to object-level fields, never to typed properties.
var reservedKeys = map[string]bool{
	"type":  true,
	"title": true,
	"tags":  true,
	"id":    true,
}

var (
	urlRe   = regexp.MustCompile(`^https?://\S+$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Result is the outcome of extracting one document's metadata.
type Result struct {
	// Values maps property ids to coerced values.
	Values map[string]schema.Value

	// NewProperties are definitions synthesized for unrecognized keys, in
	// deterministic (sorted-key) order. They have not been appended to the
	// type yet; the reconciliation engine owns that.
	NewProperties []*schema.PropertyDefinition
}

// Extract converts declared metadata into typed values against typ. Keys
// matching an existing property id or display name (case-insensitively) are
// coerced to that property's kind; unrecognized keys get an inferred kind
// and a synthesized definition.
func Extract(meta map[string]interface{}, typ *schema.ObjectType) Result {
	res := Result{Values: make(map[string]schema.Value)}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		if !reservedKeys[strings.ToLower(k)] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := meta[key]
		if raw == nil {
			continue
		}

		if def := typ.PropertyByName(key); def != nil {
			v := Coerce(raw, def.Kind)
			if !v.IsNull() {
				res.Values[def.ID] = v
			}
			continue
		}

		kind := Infer(raw)
		def := &schema.PropertyDefinition{
			ID:   slugs.Slug(key),
			Name: key,
			Kind: kind,
		}
		v := Coerce(raw, kind)
		if v.IsNull() {
			continue
		}
		res.Values[def.ID] = v
		res.NewProperties = append(res.NewProperties, def)
	}

	return res
}

// Infer guesses a property kind from a raw metadata value's shape.
func Infer(raw interface{}) schema.Kind {
	switch v := raw.(type) {
	case bool:
		return schema.KindBoolean
	case int, int64, float64:
		return schema.KindNumber
	case []interface{}:
		return schema.KindMultiselect
	case string:
		s := strings.TrimSpace(v)
		switch {
		case dates.LooksLikeDate(s) && dates.IsValidDate(s):
			return schema.KindDate
		case urlRe.MatchString(s):
			return schema.KindURL
		case emailRe.MatchString(s):
			return schema.KindEmail
		default:
			return schema.KindText
		}
	default:
		return schema.KindText
	}
}

// Coerce converts a raw metadata value to the given kind. Values that
// cannot be represented in the kind degrade to text rather than becoming
// invalid typed values; a nil return means the value is dropped.
func Coerce(raw interface{}, kind schema.Kind) schema.Value {
	switch kind {
	case schema.KindNumber, schema.KindRating:
		if n, ok := asNumber(raw); ok {
			return schema.Number(n)
		}
		return schema.Text(asString(raw))

	case schema.KindBoolean:
		switch v := raw.(type) {
		case bool:
			return schema.Bool(v)
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return schema.Bool(b)
			}
		}
		return schema.Text(asString(raw))

	case schema.KindDate:
		// Stored as the canonical string form. Date-shaped but unparseable
		// values ("2025-02-31") stay plain text instead of becoming an
		// invalid date; the string representation is the same either way,
		// so validity only gates what Infer will call a date.
		return schema.Text(strings.TrimSpace(asString(raw)))

	case schema.KindDatetime:
		return schema.Text(strings.TrimSpace(asString(raw)))

	case schema.KindMultiselect, schema.KindTags, schema.KindRelation:
		return schema.StringList(asStringList(raw))

	default: // text, select, url, email, image
		s := asString(raw)
		if s == "" {
			return schema.Null()
		}
		return schema.Text(s)
	}
}

func asNumber(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func asString(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// asStringList coerces scalars and arrays to a list of strings; element
// types are not preserved.
func asStringList(raw interface{}) []string {
	switch v := raw.(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(asString(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
		return nil
	default:
		if s := asString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}
