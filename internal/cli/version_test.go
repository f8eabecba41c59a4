package cli

import (
	"runtime/debug"
	"testing"
)

func TestCurrentVersionInfoFromBuildInfo(t *testing.T) {
	prevRead := readBuildInfo
	t.Cleanup(func() {
		readBuildInfo = prevRead
	})

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.24.1",
			Main: debug.Module{
				Path:    "github.com/avigne/trove",
				Version: "v1.2.3",
			},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2026-05-01T17:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
				{Key: "GOOS", Value: "linux"},
				{Key: "GOARCH", Value: "arm64"},
			},
		}, true
	}

	info := currentVersionInfo()
	if info.Version != "v1.2.3" {
		t.Errorf("Version = %q", info.Version)
	}
	if info.ModulePath != "github.com/avigne/trove" {
		t.Errorf("ModulePath = %q", info.ModulePath)
	}
	if info.Commit != "abc123" || info.CommitTime != "2026-05-01T17:00:00Z" {
		t.Errorf("commit info = %q, %q", info.Commit, info.CommitTime)
	}
	if !info.Modified {
		t.Error("Modified = false, want true")
	}
	if info.GOOS != "linux" || info.GOARCH != "arm64" {
		t.Errorf("platform = %s/%s", info.GOOS, info.GOARCH)
	}
	if info.GoVersion != "go1.24.1" {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "devel"},
		{"(devel)", "devel"},
		{"v0.4.0", "v0.4.0"},
	}
	for _, tt := range tests {
		if got := normalizeVersion(tt.input); got != tt.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
