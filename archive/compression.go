package archive

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Compression selects how every entry of one archive is encoded.
type Compression uint8

const (
	// None writes entries with the zip Store method.
	None Compression = iota
	// Stored writes deflate streams made only of stored blocks: deflate
	// framing around an uncompressed payload.
	Stored
	// Deflated writes fully compressed deflate streams.
	Deflated
	// bzip2 is part of the method table but cannot be selected.
	bzip2
)

// zipBzip2 is the APPNOTE method id for bzip2.
const zipBzip2 uint16 = 12

// ParseCompression maps a CLI level (0, 1 or 2) to a Compression.
func ParseCompression(level int) (Compression, error) {
	if level < int(None) || level > int(Deflated) {
		return None, fmt.Errorf("%w: %d (want 0, 1 or 2)", ErrUnsupportedCompression, level)
	}
	return Compression(level), nil
}

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Stored:
		return "stored"
	case Deflated:
		return "deflated"
	case bzip2:
		return "bzip2"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// method returns the zip method id for c and, for deflate methods, the
// flate level the compressor is registered with.
func (c Compression) method() (method uint16, level int, err error) {
	switch c {
	case None:
		return zip.Store, 0, nil
	case Stored:
		return zip.Deflate, flate.NoCompression, nil
	case Deflated:
		return zip.Deflate, flate.BestCompression, nil
	case bzip2:
		return zipBzip2, 0, fmt.Errorf("%w: %s has no compressor", ErrUnsupportedCompression, c)
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
	}
}

// register installs the compressor c needs on w and returns the zip method
// id to put in each entry header.
func (c Compression) register(w *zip.Writer) (uint16, error) {
	method, level, err := c.method()
	if err != nil {
		return 0, err
	}
	if method == zip.Deflate {
		w.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(out, level)
		})
	}
	return method, nil
}
