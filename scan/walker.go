package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/taigrr/colorhash"
	"go.uber.org/zap"
)

// Result is the outcome of a scan. Files are in traversal order, which is
// not meaningful and not stable across platforms.
type Result struct {
	Files     []string
	TotalSize int64
	// Skipped holds entries dropped because of I/O errors in tolerant mode.
	Skipped []string
}

// Len returns the number of accepted files.
func (r Result) Len() int {
	return len(r.Files)
}

// Fingerprint hashes the set of accepted paths. Two scans that found the
// same files produce the same fingerprint regardless of traversal order.
func (r Result) Fingerprint() int {
	sorted := slices.Clone(r.Files)
	slices.Sort(sorted)
	return int(colorhash.HashString(strings.Join(sorted, "\n")))
}

// Walker performs depth-first scans of Config.Roots.
type Walker struct {
	cfg    Config
	log    *zap.Logger
	onRoot func(root string)
}

// NewWalker returns a Walker for cfg. A nil logger discards output.
func NewWalker(cfg Config, log *zap.Logger) *Walker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Walker{cfg: cfg, log: log}
}

// OnRoot registers fn to be called before each root is walked.
func (w *Walker) OnRoot(fn func(root string)) *Walker {
	w.onRoot = fn
	return w
}

// Scan walks cfg.Roots without logging.
func Scan(cfg Config) (Result, error) {
	return NewWalker(cfg, nil).Scan()
}

// Scan visits every root in order and collects qualifying files.
func (w *Walker) Scan() (Result, error) {
	var res Result
	for _, root := range w.cfg.Roots {
		if w.onRoot != nil {
			w.onRoot(root)
		}
		if err := w.walkRoot(root, &res); err != nil {
			return Result{}, err
		}
	}
	w.log.Info("scan complete",
		zap.Int("files", res.Len()),
		zap.String("size", humanize.IBytes(uint64(res.TotalSize))),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("fingerprint", res.Fingerprint()))
	return res, nil
}

func (w *Walker) walkRoot(root string, res *Result) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve root %s: %w", root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("scan root %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scan root %s: %w", root, ErrNotDirectory)
	}
	w.log.Info("scanning root", zap.String("root", root))

	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			if dir == root {
				return fmt.Errorf("read root %s: %w", dir, err)
			}
			if err := w.skip(dir, err, res); err != nil {
				return err
			}
			continue
		}

		var subdirs []string
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			info, isDir, ok := resolve(path, e)
			if !ok {
				continue
			}
			if isDir {
				// blacklisted directories are still walked; their files
				// are rejected one by one below
				subdirs = append(subdirs, path)
				continue
			}
			if !w.cfg.AllowsExtension(e.Name()) {
				continue
			}
			if info == nil {
				info, err = e.Info()
				if err != nil {
					if err := w.skip(path, err, res); err != nil {
						return err
					}
					continue
				}
			}
			if info.Size() > w.cfg.MaxFileSize || w.cfg.Blacklisted(path) {
				continue
			}
			res.Files = append(res.Files, path)
			res.TotalSize += info.Size()
		}
		// push in reverse so subdirectories pop in listing order
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
	return nil
}

// resolve classifies a directory entry. Symlinks are followed with a stat:
// links to regular files count as files (info is returned), links to
// directories are not descended, and dangling links are ignored. Anything
// that is neither a regular file nor a directory is ignored.
func resolve(path string, e fs.DirEntry) (info fs.FileInfo, isDir, ok bool) {
	switch {
	case e.Type()&fs.ModeSymlink != 0:
		target, err := os.Stat(path)
		if err != nil || !target.Mode().IsRegular() {
			return nil, false, false
		}
		return target, false, true
	case e.IsDir():
		return nil, true, true
	case e.Type().IsRegular():
		return nil, false, true
	default:
		return nil, false, false
	}
}

func (w *Walker) skip(path string, err error, res *Result) error {
	if !w.cfg.Tolerant {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	w.log.Warn("skipping unreadable entry", zap.String("path", path), zap.Error(err))
	res.Skipped = append(res.Skipped, path)
	return nil
}
