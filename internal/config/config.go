package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/scanzip/archive"
	"github.com/dendrascience/scanzip/scan"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SCANZIP_"

// DefaultOutput is the archive written to the working directory.
const DefaultOutput = "files.zip"

// Settings keys, shared by koanf tags, environment variables and flags.
const (
	KeyCompression  = "compression"
	KeyMaxSize      = "max_size"
	KeyDrives       = "drives"
	KeySmallScan    = "small_scan"
	KeyTolerantScan = "tolerant_scan"
	KeyOutput       = "output"
	KeyLogLevel     = "log_level"
)

// Settings is the merged configuration of one run.
type Settings struct {
	Compression int   `koanf:"compression"`
	MaxSizeMB   int64 `koanf:"max_size"`
	Drives      bool  `koanf:"drives"`
	// SmallScan restricts the roots to the Pictures folder, even when
	// Drives is set.
	SmallScan bool `koanf:"small_scan"`
	// TolerantScan makes the walker skip unreadable nested entries
	// instead of aborting.
	TolerantScan bool   `koanf:"tolerant_scan"`
	Output       string `koanf:"output"`
	LogLevel     string `koanf:"log_level"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Compression:  int(archive.Stored),
		MaxSizeMB:    5,
		Drives:       false,
		SmallScan:    true,
		TolerantScan: false,
		Output:       DefaultOutput,
		LogLevel:     "warn",
	}
}

func (s Settings) asMap() map[string]any {
	return map[string]any{
		KeyCompression:  s.Compression,
		KeyMaxSize:      s.MaxSizeMB,
		KeyDrives:       s.Drives,
		KeySmallScan:    s.SmallScan,
		KeyTolerantScan: s.TolerantScan,
		KeyOutput:       s.Output,
		KeyLogLevel:     s.LogLevel,
	}
}

// Loader merges defaults, environment and flags.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix overrides EnvPrefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges the sources and validates the result. flags holds only the
// flags the user set explicitly, keyed like Settings.
func (l *Loader) Load(flags map[string]any) (Settings, error) {
	if err := l.k.Load(mapProvider(Defaults().asMap()), nil); err != nil {
		return Settings{}, fmt.Errorf("load defaults: %w", err)
	}

	// SCANZIP_MAX_SIZE -> max_size
	transform := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
	}
	if err := l.k.Load(env.Provider(l.envPrefix, ".", transform), nil); err != nil {
		return Settings{}, fmt.Errorf("load env: %w", err)
	}

	if len(flags) > 0 {
		if err := l.k.Load(mapProvider(flags), nil); err != nil {
			return Settings{}, fmt.Errorf("load flags: %w", err)
		}
	}

	var s Settings
	if err := l.k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load is shorthand for NewLoader().Load(flags).
func Load(flags map[string]any) (Settings, error) {
	return NewLoader().Load(flags)
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if _, err := archive.ParseCompression(s.Compression); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCompression, err)
	}
	if s.MaxSizeMB <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxSize, s.MaxSizeMB)
	}
	if s.Output == "" {
		return ErrEmptyOutput
	}
	return nil
}

// MaxFileSize converts MaxSizeMB to bytes.
func (s Settings) MaxFileSize() int64 {
	return s.MaxSizeMB * 1024 * 1024
}

// Roots lists the directories to scan under home. exists decides which
// drive candidates are present; nil means os.Stat.
func (s Settings) Roots(home string, exists func(string) bool) []string {
	if s.SmallScan {
		return []string{filepath.Join(home, "Pictures")}
	}
	if exists == nil {
		exists = PathExists
	}

	var roots []string
	for _, folder := range UserFolders() {
		roots = append(roots, filepath.Join(home, folder))
	}
	if s.Drives {
		for _, drive := range DriveCandidates() {
			if exists(drive) {
				roots = append(roots, drive)
			}
		}
	}
	return roots
}

// ScanConfig builds the walker configuration for home.
func (s Settings) ScanConfig(home string, exists func(string) bool) scan.Config {
	cfg := scan.NewConfig(s.Roots(home, exists), Extensions(), s.MaxFileSize(), Blacklist())
	cfg.Tolerant = s.TolerantScan
	return cfg
}

// ArchiveOptions builds the builder configuration.
func (s Settings) ArchiveOptions() (archive.Options, error) {
	c, err := archive.ParseCompression(s.Compression)
	if err != nil {
		return archive.Options{}, fmt.Errorf("%w: %w", ErrInvalidCompression, err)
	}
	return archive.Options{Compression: c, Destination: s.Output}, nil
}

// PathExists reports whether path can be stat'ed.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
