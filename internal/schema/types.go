// Package schema defines the dynamic object schema: object types, their
// property definitions, and the tagged-union property value.
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ObjectType defines a type of knowledge object (book, task, person, ...).
type ObjectType struct {
	// ID is a stable slug, unique across the live schema.
	ID string `json:"id"`

	// Name and NamePlural are the display names ("Book", "Books").
	Name       string `json:"name"`
	NamePlural string `json:"name_plural"`

	// Icon is an emoji or icon identifier shown next to objects of this type.
	Icon string `json:"icon,omitempty"`

	// Color is a hex color used by views. Synthesized types get a
	// deterministic color derived from the id.
	Color string `json:"color,omitempty"`

	// Properties are the typed property definitions, in declaration order.
	// Property ids are unique within a type.
	Properties []*PropertyDefinition `json:"properties,omitempty"`
}

// Property returns the property definition with the given id, or nil.
func (t *ObjectType) Property(id string) *PropertyDefinition {
	for _, p := range t.Properties {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PropertyByName returns the property whose id or display name matches
// case-insensitively, or nil.
func (t *ObjectType) PropertyByName(name string) *PropertyDefinition {
	for _, p := range t.Properties {
		if strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// AddProperty appends a property definition if no property with the same id
// exists yet. Returns true if the definition was added.
func (t *ObjectType) AddProperty(def *PropertyDefinition) bool {
	if t.Property(def.ID) != nil {
		return false
	}
	t.Properties = append(t.Properties, def)
	return true
}

// PropertyDefinition defines a single typed property within an ObjectType.
type PropertyDefinition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`

	// Options lists valid values for select/multiselect kinds.
	Options []string `json:"options,omitempty"`

	// RelationType constrains relation properties to a target type id.
	RelationType string `json:"relation_type,omitempty"`
}

// Kind is the value kind of a property.
//
// A kind is immutable once objects hold values under the property's id;
// changing it orphans those values.
type Kind string

const (
	KindText        Kind = "text"
	KindNumber      Kind = "number"
	KindDate        Kind = "date"
	KindDatetime    Kind = "datetime"
	KindBoolean     Kind = "boolean"
	KindSelect      Kind = "select"
	KindMultiselect Kind = "multiselect"
	KindRelation    Kind = "relation"
	KindRating      Kind = "rating"
	KindTags        Kind = "tags"
	KindURL         Kind = "url"
	KindEmail       Kind = "email"
	KindImage       Kind = "image"
)

// Value is a property value: a tagged union over the representations a
// property can hold. The zero Value is null.
type Value struct {
	value interface{}
}

// Text creates a text value.
func Text(s string) Value { return Value{value: s} }

// Number creates a number value.
func Number(n float64) Value { return Value{value: n} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{value: b} }

// StringList creates a list-of-strings value (multiselect, tags, relations).
func StringList(items []string) Value { return Value{value: items} }

// Null creates a null value.
func Null() Value { return Value{} }

// IsNull returns true if the value is null.
func (v Value) IsNull() bool { return v.value == nil }

// AsString returns the value as a string, if it is one.
func (v Value) AsString() (string, bool) {
	s, ok := v.value.(string)
	return s, ok
}

// AsNumber returns the value as a number, if it is one.
func (v Value) AsNumber() (float64, bool) {
	n, ok := v.value.(float64)
	return n, ok
}

// AsBool returns the value as a boolean, if it is one.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.value.(bool)
	return b, ok
}

// AsStringList returns the value as a string list, if it is one.
func (v Value) AsStringList() ([]string, bool) {
	l, ok := v.value.([]string)
	return l, ok
}

// Raw returns the underlying representation.
func (v Value) Raw() interface{} { return v.value }

// Display returns the value formatted for human output.
func (v Value) Display() string {
	switch val := v.value.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ", ")
	}
	return fmt.Sprintf("%v", v.value)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON implements json.Unmarshaler. The variant is recovered from
// the JSON shape; the owning property definition carries the kind.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch r := raw.(type) {
	case string:
		v.value = r
	case float64:
		v.value = r
	case bool:
		v.value = r
	case []interface{}:
		items := make([]string, 0, len(r))
		for _, item := range r {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		v.value = items
	default:
		v.value = nil
	}
	return nil
}
