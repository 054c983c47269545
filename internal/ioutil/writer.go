// Package ioutil provides helpers for render-to-writer functions.
package ioutil

//go:generate errtrace -w .

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer, counts written bytes and keeps the first write error.
// Once an error occurs all further writes are skipped, so a render function can issue
// a series of writes and check [CountingWriter.Result] once at the end.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
	one [1]byte
}

// NewCountingWriter creates a new CountingWriter wrapping w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (cw *CountingWriter) track(n int, err error) (int, error) {
	cw.num += n
	if err != nil {
		cw.err = err
		return n, errtrace.Wrap(err)
	}
	return n, nil
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return errtrace.Wrap2(cw.track(cw.w.Write(p)))
}

// WriteString implements io.StringWriter.
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return errtrace.Wrap2(cw.track(io.WriteString(cw.w, s)))
}

// WriteByte implements io.ByteWriter.
func (cw *CountingWriter) WriteByte(c byte) error {
	if cw.err != nil {
		return errtrace.Wrap(cw.err)
	}
	if bw, ok := cw.w.(io.ByteWriter); ok {
		err := bw.WriteByte(c)
		if err != nil {
			cw.err = err
			return errtrace.Wrap(err)
		}
		cw.num++
		return nil
	}
	cw.one[0] = c
	_, err := cw.track(cw.w.Write(cw.one[:]))
	return errtrace.Wrap(err)
}

// Result returns the total number of bytes written and the first error encountered.
func (cw *CountingWriter) Result() (int, error) {
	return cw.num, errtrace.Wrap(cw.err)
}

// Err returns the first error encountered.
func (cw *CountingWriter) Err() error { return errtrace.Wrap(cw.err) }

// Count returns the total number of bytes written.
func (cw *CountingWriter) Count() int { return cw.num }

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
