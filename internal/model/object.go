// Package model defines the core data model shared across Trove.
package model

import (
	"time"

	"github.com/avigne/trove/internal/schema"
)

// Object represents a typed knowledge object.
type Object struct {
	// ID uniquely identifies this object (a UUID string).
	ID string `json:"id"`

	// Type is the id of the object's ObjectType.
	Type string `json:"type"`

	// Title is the display title. (Type, Title) pairs are matched
	// case-insensitively during import reconciliation.
	Title string `json:"title"`

	// Body is the rich-text body as HTML. Resolved references appear as
	// spans carrying a data-ref attribute.
	Body string `json:"body,omitempty"`

	// Properties maps property definition ids to values.
	Properties map[string]schema.Value `json:"properties,omitempty"`

	// Tags is the object's tag set, stored sorted and deduplicated.
	Tags []string `json:"tags,omitempty"`

	// OutboundRefs lists ids of objects this object's body references.
	// Recomputed from the body whenever the body is rewritten.
	OutboundRefs []string `json:"outbound_refs,omitempty"`

	// ExternalRef is the opaque id assigned by the external store once the
	// object has been durably synced at least once. Its absence is the
	// marker the revert engine uses to recognize unsynced objects.
	ExternalRef string `json:"external_ref,omitempty"`

	// ImportBatch is the id of the import run that created or last
	// updated this object, empty for objects never touched by an import.
	ImportBatch string `json:"import_batch,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Synced reports whether the object has been durably persisted externally.
func (o *Object) Synced() bool { return o.ExternalRef != "" }

// HasTag reports whether the object carries the given tag.
func (o *Object) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
