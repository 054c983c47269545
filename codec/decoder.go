package codec

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/internal/errorutil"
	"github.com/ghettovoice/byteseq/internal/util"
	"github.com/ghettovoice/byteseq/log"
)

// DecodeOptions configures a [Decoder].
// A nil *DecodeOptions is valid and means the [Strict] policy and [log.Default].
type DecodeOptions struct {
	// Policy selects how malformed input is handled.
	// Default: [Strict].
	Policy ErrorPolicy
	// Log receives a debug record for every recovered malformed run.
	// Default: [log.Default].
	Log *slog.Logger
}

func (o *DecodeOptions) policy() ErrorPolicy {
	if o == nil {
		return Strict
	}
	return o.Policy
}

func (o *DecodeOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// Decoder decodes UTF-8 input into strings.
// A Decoder holds no per-call state and is safe for concurrent use.
type Decoder struct {
	encoding string
	policy   ErrorPolicy
	log      *slog.Logger
}

// NewDecoder returns a decoder for the named codec.
// Unknown codec names and policies fail with [errorutil.ErrLookup].
func NewDecoder(encoding string, opts *DecodeOptions) (*Decoder, error) {
	enc, err := Lookup(encoding)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	p := opts.policy()
	if !p.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewLookupError("unknown error handler name %s", p))
	}
	return &Decoder{
		encoding: enc,
		policy:   p,
		log:      opts.log(),
	}, nil
}

// Decode decodes b with the named codec. See [Decoder.Decode].
func Decode(b bytelike.ByteLike, encoding string, opts *DecodeOptions) (string, error) {
	d, err := NewDecoder(encoding, opts)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(d.Decode(b))
}

// Encoding returns the canonical codec name.
func (d *Decoder) Encoding() string { return d.encoding }

// Policy returns the error policy.
func (d *Decoder) Policy() ErrorPolicy { return d.policy }

// Decode decodes b. The result is always well-formed UTF-8.
// Malformed input is handled according to the decoder's policy;
// with [Strict] the first malformed run fails the call with [*DecodeError].
func (d *Decoder) Decode(b bytelike.ByteLike) (string, error) {
	src := bytelike.Contents(b)

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.Grow(len(src))

	for i := 0; i < len(src); {
		if c := src[i]; c < utf8.RuneSelf {
			sb.WriteByte(c)
			i++
			continue
		}

		r, n, reason := scan(src[i:])
		if reason == "" {
			sb.WriteRune(r)
			i += n
			continue
		}

		start, end := i, i+n
		switch d.policy {
		case Strict:
			return "", errtrace.Wrap(&DecodeError{
				Encoding: d.encoding,
				Object:   util.CloneBytes(src),
				Start:    start,
				End:      end,
				Reason:   reason,
			})
		case Ignore:
		case Replace:
			sb.WriteRune(utf8.RuneError)
		case BackslashReplace:
			for _, c := range src[start:end] {
				sb.WriteString(`\x`)
				sb.WriteByte(lowerhex[c>>4])
				sb.WriteByte(lowerhex[c&15])
			}
		}
		d.logRecovered(src, start, end, reason)
		i = end
	}
	return sb.String(), nil
}

const lowerhex = "0123456789abcdef"

func (d *Decoder) logRecovered(src []byte, start, end int, reason Reason) {
	ctx := context.Background()
	if !d.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	d.log.LogAttrs(ctx, slog.LevelDebug, "recovered malformed input",
		slog.Int("start", start),
		slog.Int("end", end),
		slog.String("reason", string(reason)),
		slog.String("policy", d.policy.String()),
		slog.Any("input", bytelike.Slice(src[start:end])),
	)
}

// scan decodes the multi-byte sequence at the start of p, p[0] >= 0x80.
// It returns the code point, the sequence length and an empty reason,
// or the length of the maximal malformed subpart and the reason it is malformed.
// The lead byte fixes the number of continuation bytes and the range allowed for the first
// of them, which excludes overlong forms, surrogates and code points above U+10FFFF.
func scan(p []byte) (rune, int, Reason) {
	var (
		size int
		cp   rune
	)
	lo, hi := byte(0x80), byte(0xbf)
	switch c := p[0]; {
	case 0xc2 <= c && c <= 0xdf:
		size, cp = 2, rune(c&0x1f)
	case c == 0xe0:
		size, cp, lo = 3, rune(c&0x0f), 0xa0
	case c == 0xed:
		size, cp, hi = 3, rune(c&0x0f), 0x9f
	case 0xe1 <= c && c <= 0xef:
		size, cp = 3, rune(c&0x0f)
	case c == 0xf0:
		size, cp, lo = 4, rune(c&0x07), 0x90
	case 0xf1 <= c && c <= 0xf3:
		size, cp = 4, rune(c&0x07)
	case c == 0xf4:
		size, cp, hi = 4, rune(c&0x07), 0x8f
	default:
		return utf8.RuneError, 1, ReasonInvalidStart
	}

	for j := 1; j < size; j++ {
		if j >= len(p) {
			return utf8.RuneError, j, ReasonUnexpectedEnd
		}
		if p[j] < lo || p[j] > hi {
			return utf8.RuneError, j, ReasonInvalidContinuation
		}
		cp = cp<<6 | rune(p[j]&0x3f)
		lo, hi = 0x80, 0xbf
	}
	return cp, size, ""
}
