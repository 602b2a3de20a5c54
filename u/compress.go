package u

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// Compression describes how a file is compressed, based on its extension
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionBzip2
	CompressionZstd
	CompressionBrotli
)

// CompressionFromPath guesses compression from file extension
// TODO: could sniff file content instead of checking file extension
func CompressionFromPath(path string) Compression {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz":
		return CompressionGzip
	case ".bz2":
		return CompressionBzip2
	case ".zst", ".zstd":
		return CompressionZstd
	case ".br":
		return CompressionBrotli
	}
	return CompressionNone
}

// implement io.ReadCloser over io.Closer wrapped with io.Reader.
// Close() closes the decompressor (if it needs closing) and then the file
type readerWrapped struct {
	c     io.Closer
	r     io.Reader
	close func()
}

func (rc *readerWrapped) Close() error {
	if rc.close != nil {
		rc.close()
	}
	return rc.c.Close()
}

func (rc *readerWrapped) Read(p []byte) (int, error) {
	return rc.r.Read(p)
}

// NewReaderMaybeCompressed wraps rc in a decompressor if path indicates
// compressed data. Closing the result closes rc
func NewReaderMaybeCompressed(rc io.ReadCloser, path string) (io.ReadCloser, error) {
	switch CompressionFromPath(path) {
	case CompressionGzip:
		r, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, err
		}
		return &readerWrapped{c: rc, r: r}, nil
	case CompressionBzip2:
		return &readerWrapped{c: rc, r: bzip2.NewReader(rc)}, nil
	case CompressionZstd:
		r, err := zstd.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, err
		}
		return &readerWrapped{c: rc, r: r, close: r.Close}, nil
	case CompressionBrotli:
		return &readerWrapped{c: rc, r: brotli.NewReader(rc)}, nil
	}
	return rc, nil
}

// OpenFileMaybeCompressed opens a file that might be compressed with gzip
// or bzip2 or zstd or brotli
func OpenFileMaybeCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewReaderMaybeCompressed(f, path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// NewWriterMaybeCompressed returns a writer that compresses data written
// to it into w if path indicates compression (gzip, zstd or brotli).
// Close() must be called to flush compressed data. It doesn't close w
func NewWriterMaybeCompressed(w io.Writer, path string) (io.WriteCloser, error) {
	switch CompressionFromPath(path) {
	case CompressionGzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case CompressionZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case CompressionBrotli:
		return brotli.NewWriterLevel(w, brotli.BestCompression), nil
	case CompressionBzip2:
		return nil, errors.New("writing bzip2 is not supported")
	}
	return nopWriteCloser{w}, nil
}
