package compress

import (
	"compress/gzip"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type Algorithm string

const (
	Gzip Algorithm = "gzip"
	Lz4  Algorithm = "lz4"
	Zstd Algorithm = "zstd"
	None Algorithm = "none"
)

// NewWriter wraps w with the requested compression. The returned closer
// must be closed to flush; for None it is a no-op wrapper around w.
func NewWriter(w io.Writer, algo Algorithm) (io.WriteCloser, error) {
	switch algo {
	case None, "":
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Lz4:
		return lz4.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	default:
		return nil, ErrUnsupportedAlgo(algo)
	}
}

// NewReader wraps r with decompression matching algo.
func NewReader(r io.Reader, algo Algorithm) (io.ReadCloser, error) {
	switch algo {
	case None, "":
		return io.NopCloser(r), nil
	case Gzip:
		return gzip.NewReader(r)
	case Lz4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		return nil, ErrUnsupportedAlgo(algo)
	}
}

// Ext returns the file name suffix for algo, empty for None.
func Ext(algo Algorithm) string {
	switch algo {
	case Gzip:
		return ".gz"
	case Lz4:
		return ".lz4"
	case Zstd:
		return ".zst"
	default:
		return ""
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

type ErrUnsupportedAlgo Algorithm

func (e ErrUnsupportedAlgo) Error() string {
	return "unsupported compression algorithm: " + string(e)
}
