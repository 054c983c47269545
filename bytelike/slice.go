package bytelike

import "iter"

// Slice adapts a raw byte slice to the [ByteLike] interface without copying.
type Slice []byte

func (s Slice) Len() int { return len(s) }

func (s Slice) At(i int) byte { return s[i] }

func (s Slice) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, c := range s {
			if !yield(i, c) {
				return
			}
		}
	}
}

func (s Slice) AppendTo(dst []byte) []byte { return append(dst, s...) }

func (s Slice) String() string { return Repr(s) }
