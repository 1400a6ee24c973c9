// Package scan walks directory trees and collects the files that qualify
// for archiving.
//
// A file qualifies when it has an allowed extension (compared lowercase),
// is no larger than the configured ceiling, and its full path contains none
// of the blacklisted substrings. Directories are always descended; a
// blacklisted directory is still walked and only its files are rejected.
//
// Two error policies are available:
//   - strict (default): any error listing a directory or stating a candidate
//     file aborts the whole scan
//   - tolerant: errors below the roots are logged, recorded in
//     Result.Skipped, and the walk continues
//
// A root that cannot be listed is fatal under both policies.
package scan
