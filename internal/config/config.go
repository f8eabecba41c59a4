// Package config handles global Trove configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global Trove configuration.
type Config struct {
	// Store is the object store path (defaults to <data dir>/store.db).
	Store string `toml:"store"`

	// SyncDir is the external sync directory. Empty disables sync.
	SyncDir string `toml:"sync_dir"`

	// ProtectedTypes are type ids revert never deletes.
	ProtectedTypes []string `toml:"protected_types"`

	// Conflicts is the default import conflict policy: skip, merge,
	// overwrite, or duplicate.
	Conflicts string `toml:"conflicts"`

	// Hashtags is the default hashtag handling: plain, tags, or mentions.
	Hashtags string `toml:"hashtags"`

	// Aliases maps extra category names to canonical type ids, extending
	// the built-in alias table.
	Aliases map[string]string `toml:"aliases"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown
	// rendering. Supported values are ANSI color codes ("0" to "255") or
	// hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown
	// code blocks. Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// StorePath returns the configured store path, falling back to the default
// data directory.
func (c *Config) StorePath() string {
	if c.Store != "" {
		return c.Store
	}
	return filepath.Join(DataDir(), "store.db")
}

// HistoryDir returns the directory import outcome records are written to.
func (c *Config) HistoryDir() string {
	return filepath.Join(DataDir(), "history")
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/trove/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "trove", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "trove", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// DataDir returns the machine-local data directory, honoring
// XDG_DATA_HOME when set.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "trove")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "trove")
	}
	return filepath.Join(".", ".trove")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# Trove Configuration

# Object store path (defaults to the local data directory)
# store = "/path/to/store.db"

# Directory the sync command pushes markdown renditions to
# sync_dir = "/path/to/sync"

# Type ids revert never deletes
# protected_types = ["page"]

# Default import conflict policy: skip, merge, overwrite, duplicate
# conflicts = "skip"

# Default hashtag handling: plain, tags, mentions
# hashtags = "plain"

# Extra category aliases for import type resolution
# [aliases]
# libros = "book"

# Optional UI accent color for headers/links in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
