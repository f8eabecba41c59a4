package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
store = "/tmp/trove/store.db"
sync_dir = "/tmp/trove/sync"
protected_types = ["page", "tag"]
conflicts = "merge"
hashtags = "mentions"

[aliases]
libros = "book"

[ui]
accent = "39"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Store != "/tmp/trove/store.db" {
		t.Errorf("Store = %q", cfg.Store)
	}
	if cfg.StorePath() != "/tmp/trove/store.db" {
		t.Errorf("StorePath = %q", cfg.StorePath())
	}
	if cfg.SyncDir != "/tmp/trove/sync" {
		t.Errorf("SyncDir = %q", cfg.SyncDir)
	}
	if len(cfg.ProtectedTypes) != 2 || cfg.ProtectedTypes[0] != "page" {
		t.Errorf("ProtectedTypes = %v", cfg.ProtectedTypes)
	}
	if cfg.Conflicts != "merge" {
		t.Errorf("Conflicts = %q", cfg.Conflicts)
	}
	if cfg.Hashtags != "mentions" {
		t.Errorf("Hashtags = %q", cfg.Hashtags)
	}
	if cfg.Aliases["libros"] != "book" {
		t.Errorf("Aliases = %v", cfg.Aliases)
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("UI.Accent = %q", cfg.UI.Accent)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("store = [broken"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestStorePathDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	cfg := &Config{}
	want := filepath.Join(DataDir(), "store.db")
	if got := cfg.StorePath(); got != want {
		t.Errorf("StorePath = %q, want %q", got, want)
	}
}
