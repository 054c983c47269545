// Package slice resolves integer indexes and start/stop/step slices against a sequence length.
//
// Negative indexes count from the end of the sequence. Out-of-range slice bounds are clamped,
// while an out-of-range single index is an error.
package slice

//go:generate errtrace -w .

import (
	"fmt"
	"iter"
	"math"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/internal/errorutil"
)

// Bound is an optional slice bound. The zero value is an omitted bound.
type Bound struct {
	val int
	set bool
}

// None is an omitted bound.
var None Bound

// Int returns a bound set to n.
func Int(n int) Bound { return Bound{val: n, set: true} }

// Value returns the bound value and whether it is set.
func (b Bound) Value() (int, bool) { return b.val, b.set }

// IsSet reports whether the bound is set.
func (b Bound) IsSet() bool { return b.set }

func (b Bound) or(def int) int {
	if v, ok := b.Value(); ok {
		return v
	}
	return def
}

func (b Bound) String() string {
	if !b.set {
		return ""
	}
	return fmt.Sprint(b.val)
}

// Range is a concrete slice range produced by [Indices].
// Stop is exclusive and equals -1 when a negative step runs down to the first element.
type Range struct {
	Start, Stop, Step int
	// Len is the number of elements selected by the range.
	Len int
}

// All returns an iterator over the selected indexes in traversal order.
func (r Range) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, n := r.Start, 0; n < r.Len; i, n = i+r.Step, n+1 {
			if !yield(i) {
				return
			}
		}
	}
}

// Indices resolves start, stop and step against a sequence of the given length.
//
// Omitted bounds default to start=0, stop=length for a positive step and to
// start=length-1, stop=-1 (before the first element) for a negative step.
// An omitted step is 1. Negative start and stop are made relative to length and then clamped.
// A zero step fails with an error matching both [errorutil.ErrType] and [errorutil.ErrInvalidArgument].
func Indices(length int, start, stop, step Bound) (Range, error) {
	st := step.or(1)
	if st == 0 {
		return Range{}, errtrace.Wrap(errorutil.NewTypeError(errorutil.NewInvalidArgumentError("slice step cannot be zero")))
	}

	var lo, hi int
	if st > 0 {
		lo, hi = 0, length
	} else {
		lo, hi = -1, length-1
	}

	r := Range{Step: st}
	if st > 0 {
		r.Start = clamp(start.or(0), length, lo, hi)
		r.Stop = clamp(stop.or(length), length, lo, hi)
		if r.Stop > r.Start {
			r.Len = (r.Stop-r.Start-1)/st + 1
		}
	} else {
		r.Start = clamp(start.or(length-1), length, lo, hi)
		if stop.IsSet() {
			r.Stop = clamp(stop.or(0), length, lo, hi)
		} else {
			r.Stop = -1
		}
		if r.Start > r.Stop {
			r.Len = (r.Start-r.Stop-1)/(-st) + 1
		}
	}
	return r, nil
}

func clamp(i, length, lo, hi int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return lo
		}
		return i
	}
	if i > hi {
		return hi
	}
	return i
}

// Index resolves a single index against a sequence of the given length.
// A negative index counts from the end. The result is in [0, length),
// otherwise [errorutil.ErrIndex] is returned.
func Index(length, i int) (int, error) {
	j := i
	if j < 0 {
		j += length
	}
	if j < 0 || j >= length {
		return 0, errtrace.Wrap(errorutil.NewIndexError("index %d out of range for length %d", i, length))
	}
	return j, nil
}

// Adjust resolves search bounds against a sequence of the given length.
// Negative bounds are made relative to length and clamped to zero, stop is clamped to length.
// Start is not clamped above length: a start past the end, like any start after stop,
// selects nothing, not even an empty match.
func Adjust(length int, start, stop Bound) (int, int) {
	lo := clamp(start.or(0), length, 0, math.MaxInt)
	hi := clamp(stop.or(length), length, 0, length)
	return lo, hi
}
