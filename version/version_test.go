package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func withInjected(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestGetFullVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		date     string
		info     *debug.BuildInfo
		expected string
	}{
		{
			name:     "injected values",
			version:  "v1.2.3",
			commit:   "0123456789abcdef",
			date:     "2026-01-01T00:00:00Z",
			expected: "v1.2.3 (0123456, built 2026-01-01T00:00:00Z)",
		},
		{
			name:     "injected without date",
			version:  "v1.2.3",
			commit:   "0123456789abcdef",
			date:     "unknown",
			expected: "v1.2.3 (0123456)",
		},
		{
			name:    "build info fallback",
			version: "dev",
			commit:  "unknown",
			date:    "unknown",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.4.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "fedcba9876543210"},
					{Key: "vcs.time", Value: "2026-02-02T00:00:00Z"},
				},
			},
			expected: "v0.4.0 (fedcba9, built 2026-02-02T00:00:00Z)",
		},
		{
			name:     "development build",
			version:  "dev",
			commit:   "unknown",
			date:     "unknown",
			info:     &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expected: "development",
		},
		{
			name:     "short commit is not abbreviated",
			version:  "v1.0.0",
			commit:   "abc",
			date:     "unknown",
			expected: "v1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withInjected(t, tt.version, tt.commit, tt.date)
			withBuildInfo(t, tt.info)
			assert.Equal(t, tt.expected, GetFullVersion())
			assert.Equal(t, "scanzip", GetInfo().Package)
		})
	}
}
