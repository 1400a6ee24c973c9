package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// EscapeToken replaces path separators inside entry names.
const EscapeToken = "_____"

var separatorEscaper = strings.NewReplacer(`\`, EscapeToken, "/", EscapeToken)

// EntryName derives the archive entry name for a source path: its base name
// with any remaining separator characters escaped. Files with the same base
// name in different directories map to the same entry name.
func EntryName(path string) string {
	return separatorEscaper.Replace(filepath.Base(path))
}

// Options configures a single archive build.
type Options struct {
	Compression Compression
	Destination string
}

// Stage names the step at which a file failed to be archived.
type Stage string

const (
	StageOpen  Stage = "open"
	StageEntry Stage = "entry"
	StageRead  Stage = "read"
	StageWrite Stage = "write"
)

// Failure records one file that did not make it into the archive.
type Failure struct {
	Path  string
	Stage Stage
	Err   error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Stage, f.Path, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Report summarizes a build. Saved and SavedBytes count only files whose
// entry was fully written.
type Report struct {
	Attempted  int
	Saved      int
	SavedBytes int64
	Failures   []Failure
}

// FailedPaths lists the source paths of all failures in build order.
func (r Report) FailedPaths() []string {
	paths := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		paths = append(paths, f.Path)
	}
	return paths
}

// Builder writes archives. It is not safe for concurrent use; entries are
// always added one at a time.
type Builder struct {
	opts Options
	log  *zap.Logger
}

// NewBuilder returns a Builder for opts. A nil logger discards output.
func NewBuilder(opts Options, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{opts: opts, log: log}
}

// Build writes files into a new archive at opts.Destination without logging.
func Build(files []string, opts Options) (Report, error) {
	return NewBuilder(opts, nil).Build(files)
}

// Build creates the destination archive and adds one entry per file. An
// error is returned only if the destination cannot be created or the
// archive cannot be finalized; per-file problems end up in Report.Failures.
func (b *Builder) Build(files []string) (rep Report, err error) {
	f, err := os.Create(b.opts.Destination)
	if err != nil {
		return Report{}, fmt.Errorf("create archive %s: %w", b.opts.Destination, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close archive %s: %w", b.opts.Destination, closeErr)
		}
	}()

	w := zip.NewWriter(f)
	method, err := b.opts.Compression.register(w)
	if err != nil {
		return Report{}, err
	}

	claimed := make(map[string]struct{}, len(files))
	for _, path := range files {
		rep.Attempted++
		n, stage, addErr := b.add(w, path, method, claimed)
		if addErr != nil {
			rep.Failures = append(rep.Failures, Failure{Path: path, Stage: stage, Err: addErr})
			b.log.Warn("file not archived",
				zap.String("path", path),
				zap.String("stage", string(stage)),
				zap.Error(addErr))
			continue
		}
		rep.Saved++
		rep.SavedBytes += n
	}

	if err := w.Close(); err != nil {
		return rep, fmt.Errorf("finalize archive %s: %w", b.opts.Destination, err)
	}
	b.log.Info("archive written",
		zap.String("destination", b.opts.Destination),
		zap.Stringer("compression", b.opts.Compression),
		zap.Int("saved", rep.Saved),
		zap.Int("failed", len(rep.Failures)),
		zap.String("size", humanize.IBytes(uint64(rep.SavedBytes))))
	return rep, nil
}

// add archives a single file. The whole file is read before its entry is
// started so a read error leaves no entry behind, and the buffer is handed
// to the entry in a single Write.
func (b *Builder) add(w *zip.Writer, path string, method uint16, claimed map[string]struct{}) (int64, Stage, error) {
	src, err := os.Open(path)
	if err != nil {
		return 0, StageOpen, err
	}
	defer src.Close()

	name := EntryName(path)
	if _, dup := claimed[name]; dup {
		return 0, StageEntry, fmt.Errorf("%w: %s", ErrDuplicateEntry, name)
	}

	buf, err := io.ReadAll(src)
	if err != nil {
		return 0, StageRead, err
	}

	header := &zip.FileHeader{Name: name, Method: method}
	if info, err := src.Stat(); err == nil {
		header.Modified = info.ModTime()
	}
	entry, err := w.CreateHeader(header)
	if err != nil {
		return 0, StageEntry, err
	}
	claimed[name] = struct{}{}

	if _, err := entry.Write(buf); err != nil {
		return 0, StageWrite, err
	}
	return int64(len(buf)), "", nil
}
