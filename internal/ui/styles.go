package ui

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA, configurable): Highlights, ids, titles
// - Muted (gray): Secondary info, counts
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// Accent style for object ids, titles, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info, hints, counts
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

var (
	accentColor string
	codeTheme   string
)

// ConfigureTheme applies the user's theming preferences. Invalid accent
// values are ignored, keeping the default palette.
func ConfigureTheme(accent, theme string) {
	codeTheme = strings.TrimSpace(theme)
	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

// CodeTheme returns the configured Chroma theme for code blocks.
func CodeTheme() string { return codeTheme }

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// normalizeAccentColor validates an accent value: an ANSI code "0".."255"
// or a "#RRGGBB" hex color.
func normalizeAccentColor(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", false
	}
	if hexColorRe.MatchString(v) {
		return v, true
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 255 {
		return strconv.Itoa(n), true
	}
	return "", false
}
