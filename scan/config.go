package scan

import (
	"path/filepath"
	"strings"
)

// Config describes a single scan. Build it once with NewConfig and treat it
// as read-only afterwards.
type Config struct {
	Roots       []string
	Extensions  map[string]struct{}
	MaxFileSize int64
	Blacklist   []string
	// Tolerant switches nested I/O errors from fatal to logged-and-skipped.
	Tolerant bool
}

// NewConfig copies its arguments into a Config. Extensions may be given with
// or without a leading dot and in any case; they are stored lowercase.
func NewConfig(roots, extensions []string, maxFileSize int64, blacklist []string) Config {
	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(strings.TrimPrefix(e, "."))] = struct{}{}
	}
	return Config{
		Roots:       append([]string(nil), roots...),
		Extensions:  exts,
		MaxFileSize: maxFileSize,
		Blacklist:   append([]string(nil), blacklist...),
	}
}

// Extension returns the part of name after its last dot. Names without a
// dot, and names whose only dot is the leading one (".bashrc"), have no
// extension.
func Extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

// AllowsExtension reports whether name carries an allowed extension.
func (c Config) AllowsExtension(name string) bool {
	ext, ok := Extension(name)
	if !ok {
		return false
	}
	_, allowed := c.Extensions[strings.ToLower(ext)]
	return allowed
}

// Blacklisted reports whether path contains any blacklist entry as a literal
// substring. This is not a path segment match: ".git" also matches
// ".github".
func (c Config) Blacklisted(path string) bool {
	for _, b := range c.Blacklist {
		if strings.Contains(path, b) {
			return true
		}
	}
	return false
}

// Accepts applies every file filter to a path of the given size.
func (c Config) Accepts(path string, size int64) bool {
	return c.AllowsExtension(filepath.Base(path)) &&
		size <= c.MaxFileSize &&
		!c.Blacklisted(path)
}

