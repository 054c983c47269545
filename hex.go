package byteseq

import (
	"encoding/hex"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/internal/errorutil"
	"github.com/ghettovoice/byteseq/internal/grammar"
)

// Hex returns the content as lowercase hex digits, two per byte.
func (b Bytes) Hex() string { return hex.EncodeToString(b.raw()) }

// FromHex decodes pairs of hex digits, either case. ASCII whitespace is allowed
// between pairs but not inside a pair.
// Any other character, or a missing second digit, fails with [ErrValue]
// reporting its byte position in s.
func FromHex(s string) (Bytes, error) {
	buf := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); {
		if grammar.IsSpace(s[i]) {
			i++
			continue
		}
		if !grammar.IsHex(s[i]) {
			return Bytes{}, errtrace.Wrap(newHexError(i))
		}
		if i+1 >= len(s) || !grammar.IsHex(s[i+1]) {
			return Bytes{}, errtrace.Wrap(newHexError(i + 1))
		}
		buf = append(buf, grammar.Unhex(s[i])<<4|grammar.Unhex(s[i+1]))
		i += 2
	}
	return wrap(buf), nil
}

func newHexError(pos int) error {
	return errorutil.NewValueError("non-hexadecimal number found in fromhex() arg at position %d", pos) //errtrace:skip
}
