package cmd

import (
	"fmt"
	"os"

	"github.com/dendrascience/scanzip/internal/config"
	"github.com/dendrascience/scanzip/internal/logging"
	"github.com/dendrascience/scanzip/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the scanzip CLI.
// scanzip has no subcommands; the root command scans and archives.
func NewRootCmd() *cobra.Command {
	var (
		compression int
		maxSize     int64
		drives      bool
	)
	defaults := config.Defaults()

	rootCmd := &cobra.Command{
		Use:   "scanzip",
		Short: "scanzip - collect user files into a single zip archive",
		Long: `scanzip scans the user profile folders (and optionally every drive root)
for documents, pictures, media and source files, then packs every match into
files.zip in the current directory.

Files are matched by extension and a size ceiling. Paths containing
.wrangler, .git, node_modules, .vscode or .rustup are skipped.

Settings can also be supplied through SCANZIP_* environment variables;
explicit flags take precedence.`,
		Args:         cobra.NoArgs,
		Version:      version.GetFullVersion(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := map[string]any{}
			if cmd.Flags().Changed("compression") {
				flags[config.KeyCompression] = compression
			}
			if cmd.Flags().Changed("max-size") {
				flags[config.KeyMaxSize] = maxSize
			}
			if cmd.Flags().Changed("drives") {
				flags[config.KeyDrives] = drives
			}

			settings, err := config.Load(flags)
			if err != nil {
				return err
			}

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home directory: %w", err)
			}

			if err := logging.Init(logging.Config{Level: settings.LogLevel}); err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			defer logging.Sync()

			return Run(cmd.OutOrStdout(), settings, home, logging.L())
		},
	}

	rootCmd.Flags().IntVarP(&compression, "compression", "c", defaults.Compression,
		"Compression level, 0 = none (fastest, biggest), 1 = stored, 2 = deflated (slowest, smallest)")
	rootCmd.Flags().Int64VarP(&maxSize, "max-size", "m", defaults.MaxSizeMB, "Max file size in MB to scan for")
	rootCmd.Flags().BoolVarP(&drives, "drives", "d", defaults.Drives, "Also scan the root of every existing drive")

	return rootCmd
}
