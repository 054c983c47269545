// Package codec implements the UTF-8 text codec: codec name lookup, encoding and
// decoding with configurable recovery from malformed input.
package codec

//go:generate errtrace -w .

import (
	"strconv"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/internal/errorutil"
	"github.com/ghettovoice/byteseq/internal/grammar"
)

// UTF8 is the canonical name of the only supported codec.
const UTF8 = "utf-8"

var utf8Aliases = map[string]struct{}{
	"utf_8":     {},
	"utf8":      {},
	"u8":        {},
	"utf":       {},
	"utf8_ucs2": {},
	"utf8_ucs4": {},
	"cp65001":   {},
}

// Lookup resolves a codec name to its canonical name.
// Names are matched case-insensitively with separator runs collapsed,
// so "UTF-8", "utf8" and " U8 " all resolve to [UTF8].
// An empty name resolves to [UTF8].
func Lookup(name string) (string, error) {
	if name == "" {
		return UTF8, nil
	}
	norm, err := grammar.NormalizeCodecName(name)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewLookupError("unknown encoding: %s", name))
	}
	if _, ok := utf8Aliases[norm]; !ok {
		return "", errtrace.Wrap(errorutil.NewLookupError("unknown encoding: %s", name))
	}
	return UTF8, nil
}

// Encode encodes text with the named codec.
// Text must be well-formed UTF-8.
func Encode(text, encoding string) ([]byte, error) {
	if _, err := Lookup(encoding); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !utf8.ValidString(text) {
		return nil, errtrace.Wrap(errorutil.NewValueError("text is not valid UTF-8"))
	}
	return []byte(text), nil
}

// ErrorPolicy selects how the decoder handles malformed input.
type ErrorPolicy int

const (
	// Strict fails on the first malformed sequence with a [*DecodeError].
	Strict ErrorPolicy = iota
	// Ignore drops malformed sequences.
	Ignore
	// Replace emits one U+FFFD per maximal malformed subpart.
	Replace
	// BackslashReplace emits \xhh for every malformed byte.
	BackslashReplace
)

var policyNames = [...]string{
	Strict:           "strict",
	Ignore:           "ignore",
	Replace:          "replace",
	BackslashReplace: "backslashreplace",
}

func (p ErrorPolicy) String() string {
	if !p.IsValid() {
		return "ErrorPolicy(" + strconv.Itoa(int(p)) + ")"
	}
	return policyNames[p]
}

// IsValid reports whether p is one of the known policies.
func (p ErrorPolicy) IsValid() bool { return p >= Strict && p <= BackslashReplace }

// ParseErrorPolicy parses an error handler name. An empty name means [Strict].
func ParseErrorPolicy(name string) (ErrorPolicy, error) {
	if name == "" {
		return Strict, nil
	}
	for p, n := range policyNames {
		if n == name {
			return ErrorPolicy(p), nil
		}
	}
	return Strict, errtrace.Wrap(errorutil.NewLookupError("unknown error handler name %s", name))
}
