// Package bytelike defines the capability shared by every value that behaves like a byte sequence:
// a known length, indexed access to octets and forward iteration.
//
// The package provides three implementations besides byteseq.Bytes:
//   - [Slice] adapts a raw []byte without copying;
//   - [Buffer] is a mutable, growable byte buffer;
//   - [View] is a read-only window over another ByteLike.
//
// Functions accepting a ByteLike treat it as read-only for the duration of the call
// and never retain it. A caller passing a [Buffer] is responsible for not mutating it concurrently.
package bytelike

//go:generate errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/bytesmock/bytelike.go -package=bytesmock . ByteLike

import (
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/internal/errorutil"
)

// ByteLike is anything exposing ordered, zero-indexed access to octets and a known length.
type ByteLike interface {
	// Len returns the number of bytes.
	Len() int
	// At returns the byte at index i, 0 <= i < Len().
	// Implementations panic if i is out of range, like a slice index expression does.
	At(i int) byte
	// All returns an iterator over index-byte pairs in order.
	All() iter.Seq2[int, byte]
}

// Appender is an optional interface implemented by ByteLike values that can append
// their content to a slice faster than byte-by-byte access.
type Appender interface {
	AppendTo(dst []byte) []byte
}

// Append appends the content of b to dst and returns the extended slice.
// A nil b appends nothing.
func Append(dst []byte, b ByteLike) []byte {
	switch v := b.(type) {
	case nil:
		return dst
	case Slice:
		return append(dst, v...)
	case Appender:
		return v.AppendTo(dst)
	}
	for _, c := range b.All() {
		dst = append(dst, c)
	}
	return dst
}

// Copy returns a fresh copy of the content of b. The result never aliases b.
func Copy(b ByteLike) []byte {
	if b == nil {
		return []byte{}
	}
	return Append(make([]byte, 0, b.Len()), b)
}

// Contents returns the content of b for reading.
// The result aliases b when b is a [Slice] or a [*Buffer], so it must not be modified
// and is valid only while b is not modified; other values are copied.
func Contents(b ByteLike) []byte {
	switch v := b.(type) {
	case nil:
		return []byte{}
	case Slice:
		return v
	case *Buffer:
		return v.Bytes()
	}
	return Copy(b)
}

// Equal reports whether a and b hold the same bytes. A nil value is treated as empty.
func Equal(a, b ByteLike) bool { return Compare(a, b) == 0 }

// Compare compares a and b lexicographically by unsigned byte value.
// The result is -1, 0 or +1. A nil value is treated as empty.
func Compare(a, b ByteLike) int {
	la, lb := length(a), length(b)
	for i := range min(la, lb) {
		ca, cb := a.At(i), b.At(i)
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}
	return 0
}

func length(b ByteLike) int {
	if b == nil {
		return 0
	}
	return b.Len()
}

// As resolves a dynamically typed argument into a ByteLike.
// It accepts a ByteLike value as is and adapts a raw []byte with [Slice].
// Text values and everything else are rejected with [errorutil.ErrType]:
// text must be encoded explicitly before it can be used as bytes.
func As(v any) (ByteLike, error) {
	switch v := v.(type) {
	case ByteLike:
		return v, nil
	case []byte:
		return Slice(v), nil
	case string:
		return nil, errtrace.Wrap(errorutil.NewTypeError("expected a bytes-like object, string found"))
	case nil:
		return nil, errtrace.Wrap(errorutil.NewTypeError("expected a bytes-like object, nil found"))
	default:
		return nil, errtrace.Wrap(errorutil.NewTypeError("expected a bytes-like object, %T found", v))
	}
}
