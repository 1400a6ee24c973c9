// Package archive packs a flat list of files into a single zip archive.
//
// Every source file becomes one top-level entry named after its base name,
// with path separators escaped so the archive never contains nested paths.
// Failures on individual files (open, duplicate name, read, write) are
// recorded in the Report and never stop the build. Only creating the
// destination and finalizing the central directory are fatal.
package archive
