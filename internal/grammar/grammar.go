// Package grammar holds the ABNF rules and character classes used to parse codec names
// and hexadecimal input.
package grammar

//go:generate errtrace -w .

import (
	"github.com/ghettovoice/abnf"
)

func init() {
	abnf.EnableNodeCache(1024)
}

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// Codec name rules. Letters, digits and dots (plus any non-ASCII byte) form words,
// every other byte is a separator:
//
//	codec-name = *sep [ word *( 1*sep word ) ] *sep
//	word       = 1*( ALPHA / DIGIT / "." / %x80-FF )
//	sep        = %x00-2D / "/" / %x3A-40 / %x5B-60 / %x7B-7F
var (
	wordChar = abnf.AltFirst(
		"word-char",
		abnf.Range("ALPHA", []byte{'a'}, []byte{'z'}),
		abnf.Range("ALPHA", []byte{'A'}, []byte{'Z'}),
		abnf.Range("DIGIT", []byte{'0'}, []byte{'9'}),
		abnf.Range("\".\"", []byte{'.'}, []byte{'.'}),
		abnf.Range("%x80-FF", []byte{0x80}, []byte{0xff}),
	)
	sepChar = abnf.AltFirst(
		"sep-char",
		abnf.Range("%x00-2D", []byte{0x00}, []byte{0x2d}),
		abnf.Range("\"/\"", []byte{'/'}, []byte{'/'}),
		abnf.Range("%x3A-40", []byte{0x3a}, []byte{0x40}),
		abnf.Range("%x5B-60", []byte{0x5b}, []byte{0x60}),
		abnf.Range("%x7B-7F", []byte{0x7b}, []byte{0x7f}),
	)
	word = abnf.Repeat1Inf("word", wordChar)
	sep  = abnf.Repeat1Inf("sep", sepChar)

	codecName = abnf.Concat(
		"codec-name",
		abnf.Repeat0Inf("*sep", sepChar),
		abnf.Optional(
			"[ word *( 1*sep word ) ]",
			abnf.Concat(
				"word *( 1*sep word )",
				word,
				abnf.Repeat0Inf("*( 1*sep word )", abnf.Concat("1*sep word", sep, word)),
			),
		),
		abnf.Repeat0Inf("*sep", sepChar),
	)
)

// CodecName matches the codec-name rule.
func CodecName(s []byte, ns *abnf.Nodes) error {
	return codecName(s, 0, ns) //errtrace:skip
}
