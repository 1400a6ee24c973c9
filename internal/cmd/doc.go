// Package cmd provides the command-line interface implementation for scanzip.
//
// It uses the Cobra library for command structure and Fang for styling.
// There is a single root command with three flags:
//   - --compression/-c: 0 = none, 1 = stored, 2 = deflated
//   - --max-size/-m: per-file size ceiling in megabytes
//   - --drives/-d: also scan every existing drive root
//
// The command loads settings through the config package, then runs the scan
// package's walker and the archive package's builder in sequence and prints
// a plain-text report. Fatal errors are returned from RunE so fang can
// render them.
package cmd
