package archive

import "errors"

// Sentinel errors for package archive.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrDuplicateEntry is reported when an entry name is already present in the archive.
	ErrDuplicateEntry = errors.New("duplicate archive entry name")

	// ErrUnsupportedCompression is returned for compression levels outside the selectable range.
	ErrUnsupportedCompression = errors.New("unsupported compression level")
)
