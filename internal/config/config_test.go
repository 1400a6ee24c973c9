package config

import (
	"path/filepath"
	"testing"

	"github.com/dendrascience/scanzip/archive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := NewLoader(WithEnvPrefix("SCANZIP_TEST_UNSET_")).Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, int64(5*1024*1024), s.MaxFileSize())
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("SCANZIP_MAX_SIZE", "12")
	t.Setenv("SCANZIP_COMPRESSION", "2")
	t.Setenv("SCANZIP_SMALL_SCAN", "false")
	t.Setenv("SCANZIP_TOLERANT_SCAN", "true")

	t.Run("env overrides defaults", func(t *testing.T) {
		s, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, int64(12), s.MaxSizeMB)
		assert.Equal(t, 2, s.Compression)
		assert.False(t, s.SmallScan)
		assert.True(t, s.TolerantScan)
		assert.Equal(t, DefaultOutput, s.Output)
	})

	t.Run("flags override env", func(t *testing.T) {
		s, err := Load(map[string]any{KeyMaxSize: int64(7), KeyCompression: 0})
		require.NoError(t, err)
		assert.Equal(t, int64(7), s.MaxSizeMB)
		assert.Equal(t, 0, s.Compression)
		assert.False(t, s.SmallScan)
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		flags   map[string]any
		wantErr error
	}{
		{name: "compression too high", flags: map[string]any{KeyCompression: 3}, wantErr: ErrInvalidCompression},
		{name: "negative compression", flags: map[string]any{KeyCompression: -1}, wantErr: ErrInvalidCompression},
		{name: "zero max size", flags: map[string]any{KeyMaxSize: int64(0)}, wantErr: ErrInvalidMaxSize},
		{name: "empty output", flags: map[string]any{KeyOutput: ""}, wantErr: ErrEmptyOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(WithEnvPrefix("SCANZIP_TEST_UNSET_")).Load(tt.flags)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettings_Roots(t *testing.T) {
	home := filepath.Join(string(filepath.Separator), "home", "user")
	present := map[string]bool{"D:/": true, "Q:/": true}
	exists := func(p string) bool { return present[p] }

	tests := []struct {
		name     string
		settings Settings
		want     []string
	}{
		{
			name:     "small scan ignores drives",
			settings: Settings{SmallScan: true, Drives: true},
			want:     []string{filepath.Join(home, "Pictures")},
		},
		{
			name:     "full user folders",
			settings: Settings{},
			want: []string{
				filepath.Join(home, "Documents"),
				filepath.Join(home, "Downloads"),
				filepath.Join(home, "Pictures"),
				filepath.Join(home, "Music"),
				filepath.Join(home, "Videos"),
				filepath.Join(home, "Desktop"),
			},
		},
		{
			name:     "user folders plus existing drives",
			settings: Settings{Drives: true},
			want: []string{
				filepath.Join(home, "Documents"),
				filepath.Join(home, "Downloads"),
				filepath.Join(home, "Pictures"),
				filepath.Join(home, "Music"),
				filepath.Join(home, "Videos"),
				filepath.Join(home, "Desktop"),
				"D:/",
				"Q:/",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.Roots(home, exists))
		})
	}
}

func TestSettings_ScanConfig(t *testing.T) {
	s := Defaults()
	s.MaxSizeMB = 2
	s.TolerantScan = true

	cfg := s.ScanConfig("/home/user", nil)
	assert.Equal(t, []string{filepath.Join("/home/user", "Pictures")}, cfg.Roots)
	assert.Equal(t, int64(2*1024*1024), cfg.MaxFileSize)
	assert.True(t, cfg.Tolerant)
	assert.Len(t, cfg.Extensions, len(Extensions()))
	assert.True(t, cfg.AllowsExtension("x.JPEG"))
	assert.True(t, cfg.Blacklisted("/p/node_modules/x.js"))
}

func TestSettings_ArchiveOptions(t *testing.T) {
	s := Defaults()
	s.Compression = 2
	opts, err := s.ArchiveOptions()
	require.NoError(t, err)
	assert.Equal(t, archive.Options{Compression: archive.Deflated, Destination: DefaultOutput}, opts)
}

func TestTablesAreCopies(t *testing.T) {
	exts := Extensions()
	exts[0] = "exe"
	assert.Equal(t, "jpg", Extensions()[0])
}
