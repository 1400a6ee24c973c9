package scan

import "errors"

// Sentinel errors for package scan.
var (
	// ErrNotDirectory is returned when a scan root exists but is not a directory.
	ErrNotDirectory = errors.New("scan root is not a directory")
)
