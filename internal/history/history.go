// Package history persists import outcome records for later inspection.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/avigne/trove/internal/atomicfile"
	"github.com/avigne/trove/internal/model"
)

// Record writes one outcome as a JSON file under dir, named by the run's
// start time and batch id so records sort chronologically.
func Record(dir string, outcome *model.ImportOutcome) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode outcome: %w", err)
	}

	name := fmt.Sprintf("%s-%s.json", outcome.Started.UTC().Format("20060102T150405"), outcome.BatchID)
	path := filepath.Join(dir, name)
	if err := atomicfile.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write history record: %w", err)
	}
	return path, nil
}

// List returns the recorded outcomes in chronological order. A missing
// directory is an empty history, not an error.
func List(dir string) ([]*model.ImportOutcome, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]*model.ImportOutcome, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read history record %s: %w", name, err)
		}
		var outcome model.ImportOutcome
		if err := json.Unmarshal(data, &outcome); err != nil {
			return nil, fmt.Errorf("failed to decode history record %s: %w", name, err)
		}
		out = append(out, &outcome)
	}
	return out, nil
}

// Latest returns the most recent record, or nil when the history is empty.
func Latest(dir string) (*model.ImportOutcome, error) {
	records, err := List(dir)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return records[len(records)-1], nil
}
