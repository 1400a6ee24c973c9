package config

import "errors"

// Sentinel errors for package config.
var (
	ErrInvalidCompression = errors.New("invalid compression level")
	ErrInvalidMaxSize     = errors.New("max size must be positive")
	ErrEmptyOutput        = errors.New("output path must not be empty")
)
