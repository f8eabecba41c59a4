package model

import (
	"time"

	"github.com/avigne/trove/internal/schema"
)

// SkippedItem records one document skipped during import, with a
// human-readable reason.
type SkippedItem struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// ImportOutcome accumulates the result of one import run. It is created
// fresh per run and returned to the caller; a non-empty Warnings list does
// not mean the run failed.
type ImportOutcome struct {
	BatchID string    `json:"batch_id"`
	Started time.Time `json:"started"`

	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`

	Errors       []string             `json:"errors,omitempty"`
	Warnings     []string             `json:"warnings,omitempty"`
	SkippedItems []SkippedItem        `json:"skipped_items,omitempty"`
	NewTypes     []*schema.ObjectType `json:"new_types,omitempty"`
}

// Warn appends a warning.
func (o *ImportOutcome) Warn(msg string) {
	o.Warnings = append(o.Warnings, msg)
}

// Fail appends a run-level error.
func (o *ImportOutcome) Fail(msg string) {
	o.Errors = append(o.Errors, msg)
}

// Skip records a skipped document.
func (o *ImportOutcome) Skip(title, reason string) {
	o.Skipped++
	o.SkippedItems = append(o.SkippedItems, SkippedItem{Title: title, Reason: reason})
}

// RevertOutcome is the result of a revert/cleanup pass.
type RevertOutcome struct {
	DeletedObjects int      `json:"deleted_objects"`
	DeletedTypes   int      `json:"deleted_types"`
	Errors         []string `json:"errors,omitempty"`
}
