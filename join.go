package byteseq

import (
	"fmt"
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/internal/errorutil"
)

// Center returns b centered in a sequence of the given width, padded with fill.
// A nil fill pads with spaces; any other fill must hold exactly one byte, otherwise
// [ErrType] is returned. A width not greater than Len returns b unchanged.
// When the padding is odd the extra byte goes to the left if width is odd
// and to the right otherwise.
func (b Bytes) Center(width int, fill bytelike.ByteLike) (Bytes, error) {
	f := byte(' ')
	if fill != nil {
		if n := fill.Len(); n != 1 {
			return Bytes{}, errtrace.Wrap(errorutil.NewTypeError("center() argument 2 must be a byte string of length 1, not %d", n))
		}
		f = fill.At(0)
	}

	src := b.raw()
	if width <= len(src) {
		return b, nil
	}

	pad := width - len(src)
	left := pad/2 + (pad & width & 1)
	buf := make([]byte, width)
	for i := range left {
		buf[i] = f
	}
	copy(buf[left:], src)
	for i := left + len(src); i < width; i++ {
		buf[i] = f
	}
	return wrap(buf), nil
}

// Join concatenates parts with b between each two of them.
// Each part is resolved with [bytelike.As]; anything that is not bytes-like fails with [ErrType].
func (b Bytes) Join(parts ...any) (Bytes, error) {
	items := make([]bytelike.ByteLike, len(parts))
	size := 0
	for i, p := range parts {
		v, err := bytelike.As(p)
		if err != nil {
			return Bytes{}, errtrace.Wrap(fmt.Errorf("sequence item %d: %w", i, err))
		}
		items[i] = v
		size += v.Len()
	}
	if len(items) > 1 {
		size += b.Len() * (len(items) - 1)
	}

	buf := make([]byte, 0, size)
	for i, v := range items {
		if i > 0 {
			buf = append(buf, b.raw()...)
		}
		buf = bytelike.Append(buf, v)
	}
	return wrap(buf), nil
}

// JoinSeq is like [Bytes.Join] for parts of a static type. Nil parts are empty.
func (b Bytes) JoinSeq(parts iter.Seq[bytelike.ByteLike]) Bytes {
	var buf []byte
	first := true
	for v := range parts {
		if !first {
			buf = append(buf, b.raw()...)
		}
		first = false
		buf = bytelike.Append(buf, v)
	}
	return wrap(buf)
}
