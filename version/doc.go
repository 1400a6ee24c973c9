// Package version reports build metadata for scanzip.
//
// Release builds inject Version, Commit and Date with -ldflags:
//
//	-ldflags "-X github.com/dendrascience/scanzip/version.Version=v1.0.0 -X github.com/dendrascience/scanzip/version.Commit=abc1234 -X github.com/dendrascience/scanzip/version.Date=2026-01-01T00:00:00Z"
//
// When a value was not injected, the module version and VCS settings
// recorded by the Go toolchain are used instead. GetFullVersion backs the
// root command's --version output; GetVersion is logged at the start of
// every run.
package version
