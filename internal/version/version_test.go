package version

import (
	"runtime/debug"
	"testing"
)

func TestGetVersion(t *testing.T) {
	origRead := readBuildInfo
	origVersion := Version
	t.Cleanup(func() {
		readBuildInfo = origRead
		Version = origVersion
	})

	tests := []struct {
		name     string
		stamped  string
		info     *debug.BuildInfo
		ok       bool
		expected string
	}{
		{name: "stamped", stamped: "v1.2.0", ok: false, expected: "v1.2.0"},
		{name: "no build info", ok: false, expected: "dev"},
		{name: "no revision", info: &debug.BuildInfo{}, ok: true, expected: "dev"},
		{
			name: "clean revision",
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
			}},
			ok:       true,
			expected: "0123456",
		},
		{
			name: "dirty revision",
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abcdef1"},
				{Key: "vcs.modified", Value: "true"},
			}},
			ok:       true,
			expected: "abcdef1 (dirty)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.stamped
			readBuildInfo = func() (*debug.BuildInfo, bool) { return tt.info, tt.ok }
			if got := GetVersion(); got != tt.expected {
				t.Fatalf("GetVersion() = %q, want %q", got, tt.expected)
			}
		})
	}
}
