package bytelike

import (
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/internal/errorutil"
)

// Buffer is a mutable byte buffer.
// The zero value is an empty buffer ready to use.
// Buffer is not safe for concurrent use.
type Buffer struct {
	buf []byte
}

// NewBuffer creates a new buffer holding a copy of b.
func NewBuffer(b ByteLike) *Buffer {
	return &Buffer{buf: Copy(b)}
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.buf)
}

func (b *Buffer) At(i int) byte { return b.buf[i] }

func (b *Buffer) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		if b == nil {
			return
		}
		for i := 0; i < len(b.buf); i++ {
			if !yield(i, b.buf[i]) {
				return
			}
		}
	}
}

func (b *Buffer) AppendTo(dst []byte) []byte {
	if b == nil {
		return dst
	}
	return append(dst, b.buf...)
}

// Set replaces the byte at index i. Negative indexes count from the end.
func (b *Buffer) Set(i, v int) error {
	if v < 0 || v > 255 {
		return errtrace.Wrap(errorutil.NewValueError("byte must be in range(0, 256)"))
	}
	if i < 0 {
		i += b.Len()
	}
	if i < 0 || i >= b.Len() {
		return errtrace.Wrap(errorutil.NewIndexError("buffer index %d out of range", i))
	}
	b.buf[i] = byte(v)
	return nil
}

// Append appends the content of other to the buffer.
func (b *Buffer) Append(other ByteLike) {
	b.buf = Append(b.buf, other)
}

// Write implements [io.Writer]; it never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteByte implements [io.ByteWriter]; it never fails.
func (b *Buffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// Truncate discards all but the first n bytes.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > b.Len() {
		return
	}
	b.buf = b.buf[:n]
}

// Reset empties the buffer keeping its capacity.
func (b *Buffer) Reset() { b.Truncate(0) }

// Bytes returns the buffer content. The slice aliases the buffer
// and is valid only until the next modification.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.buf
}

func (b *Buffer) String() string { return "bytearray(" + Repr(b) + ")" }
