// Package search implements substring and byte search over [bytelike.ByteLike] values:
// non-overlapping counting, leftmost find/index and prefix/suffix tests, all bounded
// by optional start/stop indexes resolved with [slice.Adjust].
package search

//go:generate errtrace -w .

import (
	"bytes"
	"fmt"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/internal/errorutil"
	"github.com/ghettovoice/byteseq/slice"
)

type patternKind uint8

const (
	kindSub patternKind = iota
	kindByte
)

// Pattern is a search pattern: either a byte subsequence or a single byte value.
// The zero value is the empty subsequence.
type Pattern struct {
	sub  bytelike.ByteLike
	val  int
	kind patternKind
}

// Sub returns a pattern matching the subsequence b. A nil b is the empty pattern.
func Sub(b bytelike.ByteLike) Pattern { return Pattern{sub: b, kind: kindSub} }

// Byte returns a pattern matching a single byte value v.
// The value is validated lazily: searching with v outside [0, 255] fails with [errorutil.ErrValue].
func Byte(v int) Pattern { return Pattern{val: v, kind: kindByte} }

func (p Pattern) bytes() ([]byte, error) {
	if p.kind == kindByte {
		if p.val < 0 || p.val > 255 {
			return nil, errtrace.Wrap(errorutil.NewValueError("byte must be in range(0, 256)"))
		}
		return []byte{byte(p.val)}, nil
	}
	return bytelike.Contents(p.sub), nil
}

func (p Pattern) String() string {
	if p.kind == kindByte {
		return fmt.Sprint(p.val)
	}
	return bytelike.Repr(p.sub)
}

// ErrNotFound is returned by [Index] when the pattern does not occur in the searched region.
var ErrNotFound = errorutil.NewValueError("subsection not found")

// Count returns the number of non-overlapping occurrences of p in hay[start:stop].
// After each match the scan resumes past the matched region.
// The empty pattern matches at every position including the end, so a region
// of length N yields N+1.
func Count(hay bytelike.ByteLike, p Pattern, start, stop slice.Bound) (int, error) {
	pat, err := p.bytes()
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	h := bytelike.Contents(hay)
	lo, hi := slice.Adjust(len(h), start, stop)
	if hi < lo {
		return 0, nil
	}
	if len(pat) == 0 {
		return hi - lo + 1, nil
	}
	return bytes.Count(h[lo:hi], pat), nil
}

// Find returns the lowest index in hay where p is found within hay[start:stop], or -1.
func Find(hay bytelike.ByteLike, p Pattern, start, stop slice.Bound) (int, error) {
	pat, err := p.bytes()
	if err != nil {
		return -1, errtrace.Wrap(err)
	}
	h := bytelike.Contents(hay)
	lo, hi := slice.Adjust(len(h), start, stop)
	if hi-lo < len(pat) {
		return -1, nil
	}
	i := bytes.Index(h[lo:hi], pat)
	if i < 0 {
		return -1, nil
	}
	return lo + i, nil
}

// Index is like [Find] but fails with [ErrNotFound] when p is not found.
func Index(hay bytelike.ByteLike, p Pattern, start, stop slice.Bound) (int, error) {
	i, err := Find(hay, p, start, stop)
	if err != nil {
		return -1, errtrace.Wrap(err)
	}
	if i < 0 {
		return -1, errtrace.Wrap(ErrNotFound)
	}
	return i, nil
}

// Contains reports whether p occurs anywhere in hay.
func Contains(hay bytelike.ByteLike, p Pattern) (bool, error) {
	i, err := Find(hay, p, slice.None, slice.None)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	return i >= 0, nil
}

// StartsWith reports whether hay[start:stop] starts with any of the alternative prefixes.
func StartsWith(hay bytelike.ByteLike, alts []bytelike.ByteLike, start, stop slice.Bound) bool {
	return tailMatch(hay, alts, start, stop, false)
}

// EndsWith reports whether hay[start:stop] ends with any of the alternative suffixes.
func EndsWith(hay bytelike.ByteLike, alts []bytelike.ByteLike, start, stop slice.Bound) bool {
	return tailMatch(hay, alts, start, stop, true)
}

func tailMatch(hay bytelike.ByteLike, alts []bytelike.ByteLike, start, stop slice.Bound, suffix bool) bool {
	h := bytelike.Contents(hay)
	lo, hi := slice.Adjust(len(h), start, stop)
	return slices.ContainsFunc(alts, func(alt bytelike.ByteLike) bool {
		pat := bytelike.Contents(alt)
		if hi-lo < len(pat) {
			return false
		}
		if suffix {
			return bytes.Equal(h[hi-len(pat):hi], pat)
		}
		return bytes.Equal(h[lo:lo+len(pat)], pat)
	})
}
