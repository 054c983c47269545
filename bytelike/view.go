package bytelike

import (
	"fmt"
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/internal/errorutil"
)

// View is a read-only window over another ByteLike.
// Modifications of the underlying value (e.g. a [Buffer]) are visible through the view;
// the owner of the value must not modify it while the view is being read.
type View struct {
	src       ByteLike
	off, size int
}

// NewView creates a view spanning the whole src.
func NewView(src ByteLike) View {
	return View{src: src, size: length(src)}
}

// Sub returns a view of n bytes starting at offset off of this view.
func (v View) Sub(off, n int) (View, error) {
	if off < 0 || n < 0 || off+n > v.size {
		return View{}, errtrace.Wrap(errorutil.NewIndexError("view range [%d:%d] out of range [0:%d]", off, off+n, v.size))
	}
	return View{src: v.src, off: v.off + off, size: n}, nil
}

func (v View) Len() int { return v.size }

func (v View) At(i int) byte {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("bytelike: view index %d out of range [0:%d]", i, v.size))
	}
	return v.src.At(v.off + i)
}

func (v View) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := range v.size {
			if !yield(i, v.src.At(v.off+i)) {
				return
			}
		}
	}
}

func (v View) String() string { return fmt.Sprintf("<view of %d bytes>", v.size) }
