package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/dendrascience/scanzip/archive"
	"github.com/dendrascience/scanzip/scan"
)

type timings struct {
	scan  time.Duration
	zip   time.Duration
	total time.Duration
}

func megabytes(n int64) float64 {
	return float64(n) / 1024 / 1024
}

// printReport writes the end-of-run summary. The saved totals count only
// files that were fully written; when they differ from what the scan
// matched, the matched totals are printed as well.
func printReport(out io.Writer, res scan.Result, rep archive.Report, t timings) {
	fmt.Fprintf(out, "Zipped in %.3f seconds\n", t.zip.Seconds())
	fmt.Fprintf(out, "Done in %.3f seconds\n", t.total.Seconds())
	fmt.Fprintln(out, "--------------------")
	fmt.Fprintf(out, "Total files saved: %d\n", rep.Saved)
	fmt.Fprintf(out, "Total size: %.1f MB\n", megabytes(rep.SavedBytes))
	if rep.Saved != res.Len() {
		fmt.Fprintf(out, "Files matched: %d (%.1f MB), not archived: %d\n",
			res.Len(), megabytes(res.TotalSize), len(rep.Failures))
	}
	if len(res.Skipped) > 0 {
		fmt.Fprintf(out, "Entries skipped during scan: %d\n", len(res.Skipped))
	}
}
