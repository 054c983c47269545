// Package translate builds and applies 256-entry byte translation tables.
//
// A [Table] is immutable once built and may be shared between goroutines.
package translate

//go:generate errtrace -w .

import (
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/internal/errorutil"
)

// Size is the number of entries of a translation table.
const Size = 256

// Table maps every byte value to a replacement byte value.
// It implements [bytelike.ByteLike]: entry i is the replacement of byte i.
type Table struct {
	m [Size]byte
}

// Identity returns a table mapping every byte to itself.
func Identity() *Table {
	t := new(Table)
	for i := range t.m {
		t.m[i] = byte(i)
	}
	return t
}

// MakeTrans returns a table that maps each byte of from to the byte at the same position in to.
// Bytes absent from from map to themselves; when a byte occurs several times in from the last occurrence wins.
// from and to must have equal lengths, otherwise [errorutil.ErrValue] is returned.
func MakeTrans(from, to bytelike.ByteLike) (*Table, error) {
	f, t := bytelike.Contents(from), bytelike.Contents(to)
	if len(f) != len(t) {
		return nil, errtrace.Wrap(errorutil.NewValueError("maketrans arguments must have same length, got %d and %d", len(f), len(t)))
	}

	tbl := Identity()
	for i, c := range f {
		tbl.m[c] = t[i]
	}
	return tbl, nil
}

// FromByteLike converts a 256-byte value into a table.
// A nil b returns a nil table, which [Apply] treats as the identity.
// Any other length, including zero, fails with [errorutil.ErrValue].
func FromByteLike(b bytelike.ByteLike) (*Table, error) {
	switch v := b.(type) {
	case nil:
		return nil, nil
	case *Table:
		return v, nil
	}
	if n := b.Len(); n != Size {
		return nil, errtrace.Wrap(errorutil.NewValueError("translation table must be %d characters long, got %d", Size, n))
	}

	tbl := new(Table)
	for i, c := range b.All() {
		tbl.m[i] = c
	}
	return tbl, nil
}

func (t *Table) Len() int { return Size }

func (t *Table) At(i int) byte { return t.m[i] }

func (t *Table) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, c := range t.m {
			if !yield(i, c) {
				return
			}
		}
	}
}

func (t *Table) AppendTo(dst []byte) []byte { return append(dst, t.m[:]...) }

// Map returns the replacement of c. A nil table maps c to itself.
func (t *Table) Map(c byte) byte {
	if t == nil {
		return c
	}
	return t.m[c]
}

// Apply translates src: bytes present in del are dropped, the remaining bytes are replaced
// through t. Deletion is checked against the original byte, before mapping.
// A nil t keeps the remaining bytes unchanged; a nil del deletes nothing.
func Apply(src bytelike.ByteLike, t *Table, del bytelike.ByteLike) []byte {
	var drop [Size]bool
	for _, c := range bytelike.Contents(del) {
		drop[c] = true
	}

	s := bytelike.Contents(src)
	out := make([]byte, 0, len(s))
	for _, c := range s {
		if drop[c] {
			continue
		}
		out = append(out, t.Map(c))
	}
	return out
}
