package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/dendrascience/scanzip/archive"
	"github.com/dendrascience/scanzip/internal/config"
	"github.com/dendrascience/scanzip/internal/logging"
	"github.com/dendrascience/scanzip/scan"
	"github.com/dendrascience/scanzip/version"
	"go.uber.org/zap"
)

// Run scans the roots derived from settings and home, writes the archive,
// and prints the report to out. The returned error is always fatal: the
// scan failed, or the archive could not be created or finalized.
func Run(out io.Writer, settings config.Settings, home string, log *zap.Logger) error {
	runID := logging.NewRunID()
	log = logging.ForRun(log, runID)
	log.Info("scanzip starting",
		zap.String("version", version.GetVersion()),
		zap.Int("compression", settings.Compression),
		zap.Int64("max_size_mb", settings.MaxSizeMB),
		zap.Bool("drives", settings.Drives),
		zap.Bool("small_scan", settings.SmallScan),
		zap.Bool("tolerant_scan", settings.TolerantScan))

	opts, err := settings.ArchiveOptions()
	if err != nil {
		return err
	}
	scanCfg := settings.ScanConfig(home, nil)

	var t timings
	allStart := time.Now()

	fmt.Fprintln(out, "Scanning...")
	scanStart := time.Now()
	walker := scan.NewWalker(scanCfg, log).OnRoot(func(root string) {
		fmt.Fprintf(out, "Scanning %s\n", root)
	})
	res, err := walker.Scan()
	if err != nil {
		return err
	}
	t.scan = time.Since(scanStart)
	fmt.Fprintf(out, "Scanned in %.3f seconds\n", t.scan.Seconds())

	fmt.Fprintln(out, "Zipping files...")
	zipStart := time.Now()
	rep, err := archive.NewBuilder(opts, log).Build(res.Files)
	for _, f := range rep.Failures {
		fmt.Fprintln(out, f.Path)
	}
	if err != nil {
		return err
	}
	t.zip = time.Since(zipStart)
	t.total = time.Since(allStart)

	printReport(out, res, rep, t)
	return nil
}
