// Package config loads scanzip settings and turns them into the immutable
// scan.Config and archive.Options a run works with.
//
// Settings are layered with koanf, later sources overriding earlier ones:
//  1. built-in defaults
//  2. environment variables (SCANZIP_COMPRESSION, SCANZIP_MAX_SIZE, ...)
//  3. command-line flags the user explicitly set
//
// The fixed tables (allowed extensions, blacklist, user folders, drive
// candidates) are returned as fresh copies so no caller can alter them for
// another.
package config
