package byteseq

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/search"
	"github.com/ghettovoice/byteseq/slice"
)

// Contains reports whether p occurs in b.
// A byte pattern outside [0, 255] fails with [ErrValue].
func (b Bytes) Contains(p search.Pattern) (bool, error) {
	return errtrace.Wrap2(search.Contains(b, p))
}

// Count returns the number of non-overlapping occurrences of p in b[start:stop].
func (b Bytes) Count(p search.Pattern, start, stop slice.Bound) (int, error) {
	return errtrace.Wrap2(search.Count(b, p, start, stop))
}

// Find returns the lowest index of p in b[start:stop], or -1.
func (b Bytes) Find(p search.Pattern, start, stop slice.Bound) (int, error) {
	return errtrace.Wrap2(search.Find(b, p, start, stop))
}

// Index is like [Bytes.Find] but fails with [ErrValue] when p is not found.
func (b Bytes) Index(p search.Pattern, start, stop slice.Bound) (int, error) {
	return errtrace.Wrap2(search.Index(b, p, start, stop))
}

// StartsWith reports whether b[start:stop] starts with any of prefixes.
func (b Bytes) StartsWith(prefixes []bytelike.ByteLike, start, stop slice.Bound) bool {
	return search.StartsWith(b, prefixes, start, stop)
}

// EndsWith reports whether b[start:stop] ends with any of suffixes.
func (b Bytes) EndsWith(suffixes []bytelike.ByteLike, start, stop slice.Bound) bool {
	return search.EndsWith(b, suffixes, start, stop)
}
