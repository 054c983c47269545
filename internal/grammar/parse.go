package grammar

import (
	"bytes"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/byteseq/internal/constraints"
	"github.com/ghettovoice/byteseq/internal/errorutil"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// ParseCodecName splits a codec name into its words, e.g. "UTF-8" into "UTF" and "8".
// Separator runs are dropped. A name made only of separators yields no words.
func ParseCodecName[T constraints.Byteseq](s T) ([][]byte, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := CodecName([]byte(s), ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}

	var words [][]byte
	for _, wn := range n.GetNodes("word") {
		words = append(words, bytes.Clone(wn.Value))
	}
	return words, nil
}

// NormalizeCodecName lower-cases ASCII letters in the words of a codec name and joins them with "_",
// e.g. " UTF--8 " becomes "utf_8".
func NormalizeCodecName[T constraints.Byteseq](s T) (string, error) {
	words, err := ParseCodecName(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	name := bytes.Join(words, []byte{'_'})
	for i, c := range name {
		if 'A' <= c && c <= 'Z' {
			name[i] = c + 'a' - 'A'
		}
	}
	return string(name), nil
}
