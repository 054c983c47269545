package byteseq

import (
	"bytes"

	"github.com/ghettovoice/byteseq/bytelike"
)

// Result is the outcome of a rich comparison.
type Result int8

const (
	False Result = iota
	True
	// NotImplemented means the operand type is not comparable with Bytes.
	NotImplemented
)

func (r Result) String() string {
	switch r {
	case False:
		return "False"
	case True:
		return "True"
	case NotImplemented:
		return "NotImplemented"
	}
	return "Result(?)"
}

// Bool reports whether r is [True].
func (r Result) Bool() bool { return r == True }

func boolResult(v bool) Result {
	if v {
		return True
	}
	return False
}

// Compare compares b and other lexicographically, returning -1, 0 or +1.
// A nil other is empty.
func (b Bytes) Compare(other bytelike.ByteLike) int {
	if o, ok := other.(Bytes); ok {
		return bytes.Compare(b.raw(), o.raw())
	}
	return bytelike.Compare(b, other)
}

func (b Bytes) compareAny(other any) (int, bool) {
	switch v := other.(type) {
	case nil:
		return 0, false
	case bytelike.ByteLike:
		return b.Compare(v), true
	case []byte:
		return bytes.Compare(b.raw(), v), true
	}
	return 0, false
}

func (b Bytes) rich(other any, fn func(int) bool) Result {
	c, ok := b.compareAny(other)
	if !ok {
		return NotImplemented
	}
	return boolResult(fn(c))
}

// Eq compares b with any bytes-like value. Other operand types give [NotImplemented].
func (b Bytes) Eq(other any) Result { return b.rich(other, func(c int) bool { return c == 0 }) }

// Ne is the negation of [Bytes.Eq].
func (b Bytes) Ne(other any) Result { return b.rich(other, func(c int) bool { return c != 0 }) }

// Lt reports whether b orders before other.
func (b Bytes) Lt(other any) Result { return b.rich(other, func(c int) bool { return c < 0 }) }

// Le reports whether b orders before or equals other.
func (b Bytes) Le(other any) Result { return b.rich(other, func(c int) bool { return c <= 0 }) }

// Gt reports whether b orders after other.
func (b Bytes) Gt(other any) Result { return b.rich(other, func(c int) bool { return c > 0 }) }

// Ge reports whether b orders after or equals other.
func (b Bytes) Ge(other any) Result { return b.rich(other, func(c int) bool { return c >= 0 }) }

// Equal reports whether other is bytes-like with the same content.
func (b Bytes) Equal(other any) bool { return b.Eq(other) == True }
