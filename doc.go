// Package main provides the scanzip command-line interface.
//
// scanzip collects user files into a single zip archive. It walks the user
// profile folders (and, with --drives, every existing drive root), keeps the
// files whose extension is on the allowlist and whose size is within the
// --max-size ceiling, skips anything under tooling directories such as .git
// or node_modules, and writes every match as a flat entry of files.zip in
// the working directory.
//
// The binary only runs on Windows; on any other platform it prints a notice
// and exits successfully.
package main
