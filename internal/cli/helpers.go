package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avigne/trove/internal/extsync"
	"github.com/avigne/trove/internal/store"
)

// openStore opens the configured object store, creating its parent
// directory on first use. Caller is responsible for calling db.Close().
func openStore() (*store.DB, error) {
	path := storePathFlag
	if path == "" {
		path = getConfig().StorePath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}
	return db, nil
}

// openSyncer returns the configured external syncer, or nil when no sync
// directory is configured.
func openSyncer() (extsync.Syncer, error) {
	dir := getConfig().SyncDir
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sync directory %s: %w", dir, err)
	}
	return extsync.NewDir(dir), nil
}
