// Package source provides the seekable byte-source abstraction consumed
// identically by the BMP and TGA decoders (spec §4.3 "Byte-Source
// Adapter"). It intentionally has no locking or asynchronous variant: the
// core is single-threaded per call (spec §5).
package source

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/TraceMyers/Blight/internal/errs"
)

// Source is a seekable, size-queryable byte stream. ReadAt never advances
// the stream's own cursor; ReadExact does.
type Source interface {
	// ReadExact reads exactly len(p) bytes starting at the current cursor.
	ReadExact(p []byte) error
	// ReadAt reads exactly len(p) bytes starting at off, independent of
	// the current cursor.
	ReadAt(p []byte, off int64) error
	// Size returns the total byte length of the stream.
	Size() int64
	// ReadAll returns the entire stream contents from offset 0.
	ReadAll() ([]byte, error)
}

// memSource is a Source backed by an in-memory byte slice: used by tests
// and by Load, which wraps the file contents after slurping them once
// (spec §4.2 phase 1, "Slurp & validate identity" — the BMP decoder always
// reads the whole file up front).
type memSource struct {
	buf    []byte
	cursor int64
}

// NewMemSource wraps buf as a Source without copying it.
func NewMemSource(buf []byte) Source {
	return &memSource{buf: buf}
}

func (m *memSource) ReadExact(p []byte) error {
	if err := m.ReadAt(p, m.cursor); err != nil {
		return err
	}
	m.cursor += int64(len(p))
	return nil
}

func (m *memSource) ReadAt(p []byte, off int64) error {
	if off < 0 || off+int64(len(p)) > int64(len(m.buf)) {
		return errs.New(errs.UnexpectedEOF, "source: read at")
	}
	copy(p, m.buf[off:off+int64(len(p))])
	return nil
}

func (m *memSource) Size() int64 { return int64(len(m.buf)) }

func (m *memSource) ReadAll() ([]byte, error) { return m.buf, nil }

// fileSource is a Source over an open file. ReadExact and ReadAt read
// from disk; ReadAll reads the whole file into a new buffer on each call.
// Blight decoders need random access (footers, extent validation, palette
// lookups) over the whole file, so Load calls ReadAll once and decodes
// from that buffer.
type fileSource struct {
	f        *os.File
	size     int64
	maxAlloc int64
}

// Open opens path and wraps it as a Source. maxAlloc bounds how large a
// file the decoder is willing to slurp into memory (spec §5: "A decode is
// bounded by file size, which is checked against max_alloc_sz early").
func Open(path string, maxAlloc int64) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.UnexpectedEOF, "source: open", errors.Wrap(err, "open file"))
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errs.Wrap(errs.UnexpectedEOF, "source: stat", errors.Wrap(err, "stat file"))
	}
	size := fi.Size()
	if maxAlloc > 0 && size > maxAlloc {
		_ = f.Close()
		return nil, errs.New(errs.AllocTooLarge, "source: open")
	}
	return &fileSource{f: f, size: size, maxAlloc: maxAlloc}, nil
}

func (s *fileSource) ReadExact(p []byte) error {
	if _, err := io.ReadFull(s.f, p); err != nil {
		return eofErr(err)
	}
	return nil
}

func (s *fileSource) ReadAt(p []byte, off int64) error {
	if off < 0 || off+int64(len(p)) > s.size {
		return errs.New(errs.UnexpectedEOF, "source: read at")
	}
	if _, err := s.f.ReadAt(p, off); err != nil {
		return eofErr(err)
	}
	return nil
}

func (s *fileSource) Size() int64 { return s.size }

func (s *fileSource) ReadAll() ([]byte, error) {
	buf := make([]byte, s.size)
	if err := s.ReadAt(buf, 0); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close releases the underlying file handle. Any error from Close is
// combined with a decode error by the caller (see Load in the root
// package), grounded in the
// defer multierr.Combine(err, f.Close()) pattern.
func (s *fileSource) Close() error {
	return s.f.Close()
}

// CloseIfCloser closes src if it implements io.Closer; a no-op for
// memSource which owns nothing.
func CloseIfCloser(src Source) error {
	if c, ok := src.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func eofErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errs.Wrap(errs.UnexpectedEOF, "source: read", err)
	}
	return errs.Wrap(errs.PartialRead, "source: read", errors.Wrap(err, "read"))
}
