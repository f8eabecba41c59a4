package ui

import "testing"

func TestNormalizeAccentColor(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"39", "39", true},
		{"0", "0", true},
		{"255", "255", true},
		{"#A78BFA", "#A78BFA", true},
		{" #a78bfa ", "#a78bfa", true},
		{"256", "", false},
		{"-1", "", false},
		{"#FFF", "", false},
		{"purple", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := normalizeAccentColor(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("normalizeAccentColor(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConfigureTheme(t *testing.T) {
	t.Cleanup(func() { ConfigureTheme("", "") })

	ConfigureTheme("39", "monokai")
	if got, ok := AccentColor(); !ok || got != "39" {
		t.Errorf("AccentColor = %q, %v", got, ok)
	}
	if CodeTheme() != "monokai" {
		t.Errorf("CodeTheme = %q", CodeTheme())
	}

	ConfigureTheme("not-a-color", "")
	if _, ok := AccentColor(); ok {
		t.Error("invalid accent should reset to default")
	}
}
