package history

import (
	"testing"
	"time"

	"github.com/avigne/trove/internal/model"
)

func TestRecordAndList(t *testing.T) {
	dir := t.TempDir()

	first := &model.ImportOutcome{
		BatchID: "batch-1",
		Started: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Created: 3,
	}
	second := &model.ImportOutcome{
		BatchID: "batch-2",
		Started: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Updated: 1,
		Warnings: []string{"something minor"},
	}

	if _, err := Record(dir, first); err != nil {
		t.Fatalf("recording first: %v", err)
	}
	if _, err := Record(dir, second); err != nil {
		t.Fatalf("recording second: %v", err)
	}

	records, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].BatchID != "batch-1" || records[1].BatchID != "batch-2" {
		t.Errorf("records out of order: %s, %s", records[0].BatchID, records[1].BatchID)
	}
	if records[1].Warnings[0] != "something minor" {
		t.Errorf("warnings not round-tripped: %v", records[1].Warnings)
	}

	latest, err := Latest(dir)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.BatchID != "batch-2" {
		t.Errorf("Latest = %s, want batch-2", latest.BatchID)
	}
}

func TestListMissingDir(t *testing.T) {
	records, err := List(t.TempDir() + "/nope")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if records != nil {
		t.Errorf("got %v, want nil", records)
	}
}
