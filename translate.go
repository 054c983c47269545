package byteseq

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/codec"
	"github.com/ghettovoice/byteseq/translate"
)

// MakeTrans returns a 256-byte translation table for [Bytes.Translate] mapping each byte
// of from to the byte at the same position in to.
// Arguments of different lengths fail with [ErrValue].
func MakeTrans(from, to bytelike.ByteLike) (Bytes, error) {
	t, err := translate.MakeTrans(from, to)
	if err != nil {
		return Bytes{}, errtrace.Wrap(err)
	}
	return FromByteLike(t), nil
}

// Translate returns a copy of b with the bytes in del removed and the remaining bytes
// mapped through table. A nil table keeps bytes unchanged, any other table must be
// 256 bytes long, otherwise [ErrValue] is returned.
func (b Bytes) Translate(table, del bytelike.ByteLike) (Bytes, error) {
	t, err := translate.FromByteLike(table)
	if err != nil {
		return Bytes{}, errtrace.Wrap(err)
	}
	return wrap(translate.Apply(b, t, del)), nil
}

// Decode decodes b as text with the named codec and error handler.
// An empty encoding means UTF-8 and an empty errors means strict.
// Unknown codecs and handlers fail with [ErrLookup]; malformed input under the strict
// handler fails with a [*codec.DecodeError] matching [ErrUnicodeDecode].
func (b Bytes) Decode(encoding, errors string) (string, error) {
	enc, err := codec.Lookup(encoding)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	p, err := codec.ParseErrorPolicy(errors)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(codec.Decode(b, enc, &codec.DecodeOptions{Policy: p}))
}

// DecodeWith decodes b with a configured decoder.
func (b Bytes) DecodeWith(d *codec.Decoder) (string, error) {
	return errtrace.Wrap2(d.Decode(b))
}
