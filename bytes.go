// Package byteseq implements Bytes, an immutable sequence of octets with the text-like
// operations of a byte string: slicing, searching, case mapping, padding, joining,
// translation, hex conversion and decoding to text.
//
// Any [bytelike.ByteLike] value (a [Bytes], a raw [bytelike.Slice], a mutable
// [bytelike.Buffer] or a [bytelike.View]) can be passed where another sequence is expected.
// Arguments are only read for the duration of a call and never retained.
package byteseq

//go:generate errtrace -w .

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"sync"

	"braces.dev/errtrace"
	"github.com/cespare/xxhash/v2"

	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/codec"
	"github.com/ghettovoice/byteseq/internal/errorutil"
	"github.com/ghettovoice/byteseq/internal/util"
	"github.com/ghettovoice/byteseq/slice"
)

// Bytes is an immutable sequence of octets.
// The zero value is an empty sequence. Bytes is safe for concurrent use.
type Bytes struct {
	d *data
}

type data struct {
	b    []byte
	once sync.Once
	hash uint64
}

// wrap takes ownership of b.
func wrap(b []byte) Bytes {
	if len(b) == 0 {
		return Bytes{}
	}
	return Bytes{&data{b: b}}
}

func (b Bytes) raw() []byte {
	if b.d == nil {
		return nil
	}
	return b.d.b
}

// FromInts returns a sequence of the given byte values.
// Values outside [0, 255] fail with [ErrValue].
func FromInts(ints []int) (Bytes, error) {
	buf := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return Bytes{}, errtrace.Wrap(errorutil.NewValueError("bytes must be in range(0, 256), got %d at index %d", v, i))
		}
		buf[i] = byte(v)
	}
	return wrap(buf), nil
}

// FromIntSeq is like [FromInts] but reads the values from an iterator.
func FromIntSeq(seq iter.Seq[int]) (Bytes, error) {
	var buf []byte
	i := 0
	for v := range seq {
		if v < 0 || v > 255 {
			return Bytes{}, errtrace.Wrap(errorutil.NewValueError("bytes must be in range(0, 256), got %d at index %d", v, i))
		}
		buf = append(buf, byte(v))
		i++
	}
	return wrap(buf), nil
}

// FromByteLike returns a copy of b. A nil b gives an empty sequence.
func FromByteLike(b bytelike.ByteLike) Bytes {
	if v, ok := b.(Bytes); ok {
		return v
	}
	return wrap(bytelike.Copy(b))
}

// FromBytes returns a copy of b.
func FromBytes(b []byte) Bytes {
	return wrap(util.CloneBytes(b))
}

// Zeros returns n zero bytes. A negative n fails with [ErrValue].
func Zeros(n int) (Bytes, error) {
	if n < 0 {
		return Bytes{}, errtrace.Wrap(errorutil.NewValueError("negative count %d", n))
	}
	return wrap(make([]byte, n)), nil
}

// FromString encodes text with the named codec.
// Unknown codecs fail with [ErrLookup].
func FromString(text, encoding string) (Bytes, error) {
	b, err := codec.Encode(text, encoding)
	if err != nil {
		return Bytes{}, errtrace.Wrap(err)
	}
	return wrap(b), nil
}

// New builds a sequence from a dynamically typed argument list:
//
//	New()                  empty sequence
//	New(n int)             n zero bytes
//	New([]int)             byte values, see FromInts
//	New(iter.Seq[int])     byte values from an iterator
//	New([]byte)            copy
//	New(ByteLike)          copy
//	New(text, encoding)    encoded text
//
// Text without an encoding and any other shape fail with [ErrType].
func New(args ...any) (Bytes, error) {
	switch len(args) {
	case 0:
		return Bytes{}, nil
	case 1:
		switch v := args[0].(type) {
		case int:
			return errtrace.Wrap2(Zeros(v))
		case []int:
			return errtrace.Wrap2(FromInts(v))
		case iter.Seq[int]:
			return errtrace.Wrap2(FromIntSeq(v))
		case []byte:
			return FromBytes(v), nil
		case bytelike.ByteLike:
			return FromByteLike(v), nil
		case string:
			return Bytes{}, errtrace.Wrap(errorutil.NewTypeError("string argument without an encoding"))
		default:
			return Bytes{}, errtrace.Wrap(errorutil.NewTypeError("cannot convert '%T' object to bytes", v))
		}
	case 2:
		text, ok1 := args[0].(string)
		enc, ok2 := args[1].(string)
		if !ok1 {
			return Bytes{}, errtrace.Wrap(errorutil.NewTypeError("encoding without a string argument"))
		}
		if !ok2 {
			return Bytes{}, errtrace.Wrap(errorutil.NewTypeError("encoding must be string, not %T", args[1]))
		}
		return errtrace.Wrap2(FromString(text, enc))
	default:
		return Bytes{}, errtrace.Wrap(errorutil.NewTypeError("expected at most 2 arguments, got %d", len(args)))
	}
}

// Len returns the number of bytes.
func (b Bytes) Len() int { return len(b.raw()) }

// At returns the byte at index i, 0 <= i < Len(). It panics if i is out of range.
func (b Bytes) At(i int) byte { return b.raw()[i] }

// All returns an iterator over index-byte pairs.
func (b Bytes) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, c := range b.raw() {
			if !yield(i, c) {
				return
			}
		}
	}
}

// AppendTo appends the content of b to dst.
func (b Bytes) AppendTo(dst []byte) []byte { return append(dst, b.raw()...) }

// Bytes returns a copy of the content.
func (b Bytes) Bytes() []byte { return util.CloneBytes(b.raw()) }

// Clone returns b. Bytes is immutable, so clones share their storage.
func (b Bytes) Clone() Bytes { return b }

// IsZero reports whether b is empty.
func (b Bytes) IsZero() bool { return b.Len() == 0 }

// Repr returns b as a bytes literal, like b'ab\x00'.
func (b Bytes) Repr() string { return bytelike.Repr(bytelike.Slice(b.raw())) }

func (b Bytes) String() string { return b.Repr() }

// RenderTo writes the [Bytes.Repr] form of b to w.
func (b Bytes) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(bytelike.WriteRepr(w, bytelike.Slice(b.raw())))
}

// Format implements [fmt.Formatter].
// Verbs %s and %v print [Bytes.Repr], %q prints it quoted, %x and %X print hex digits.
func (b Bytes) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		b.RenderTo(f) //nolint:errcheck
	case 'q':
		fmt.Fprint(f, strconv.Quote(b.Repr()))
	case 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), b.raw())
	default:
		fmt.Fprintf(f, "%%!%c(byteseq.Bytes=%s)", verb, b.Repr())
	}
}

// Concat returns b followed by other.
func (b Bytes) Concat(other bytelike.ByteLike) Bytes {
	if other == nil || other.Len() == 0 {
		return b
	}
	buf := make([]byte, 0, b.Len()+other.Len())
	buf = append(buf, b.raw()...)
	return wrap(bytelike.Append(buf, other))
}

// Item returns the byte at index i. A negative i counts from the end.
// Out-of-range indexes fail with [ErrIndex].
func (b Bytes) Item(i int) (byte, error) {
	j, err := slice.Index(b.Len(), i)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return b.raw()[j], nil
}

// Slice returns the bytes selected by start, stop and step, see [slice.Indices].
// A zero step fails with [ErrType].
func (b Bytes) Slice(start, stop, step slice.Bound) (Bytes, error) {
	src := b.raw()
	r, err := slice.Indices(len(src), start, stop, step)
	if err != nil {
		return Bytes{}, errtrace.Wrap(err)
	}
	if r.Len == 0 {
		return Bytes{}, nil
	}
	if r.Step == 1 {
		return wrap(util.CloneBytes(src[r.Start : r.Start+r.Len])), nil
	}
	buf := make([]byte, 0, r.Len)
	for i := range r.All() {
		buf = append(buf, src[i])
	}
	return wrap(buf), nil
}

// Hash returns a hash of the content. Equal sequences have equal hashes.
// The hash is computed once and cached.
func (b Bytes) Hash() uint64 {
	if b.d == nil {
		return xxhash.Sum64(nil)
	}
	b.d.once.Do(func() {
		b.d.hash = xxhash.Sum64(b.d.b)
	})
	return b.d.hash
}

// MarshalText implements [encoding.TextMarshaler] using the [Bytes.Hex] form.
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.Hex()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using the [FromHex] form.
func (b *Bytes) UnmarshalText(text []byte) error {
	v, err := FromHex(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*b = v
	return nil
}
