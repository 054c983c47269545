package codec

import (
	"fmt"
	"log/slog"

	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/internal/errorutil"
)

// Reason describes why a byte run could not be decoded.
type Reason string

const (
	ReasonInvalidStart        Reason = "invalid start byte"
	ReasonInvalidContinuation Reason = "invalid continuation byte"
	ReasonUnexpectedEnd       Reason = "unexpected end of data"
)

// DecodeError is returned by the [Strict] policy for the first malformed run of the input.
// It matches both [errorutil.ErrUnicodeDecode] and [errorutil.ErrValue].
type DecodeError struct {
	Encoding string
	// Object is a copy of the whole input.
	Object []byte
	// Start and End delimit the malformed run, Object[Start:End].
	Start, End int
	Reason     Reason
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.End-e.Start == 1 && e.Start < len(e.Object) {
		return fmt.Sprintf("'%s' codec can't decode byte 0x%02x in position %d: %s",
			e.Encoding, e.Object[e.Start], e.Start, e.Reason)
	}
	return fmt.Sprintf("'%s' codec can't decode bytes in position %d-%d: %s",
		e.Encoding, e.Start, e.End-1, e.Reason)
}

func (*DecodeError) Unwrap() []error {
	return []error{errorutil.ErrUnicodeDecode, errorutil.ErrValue}
}

// Bytes returns the malformed run.
func (e *DecodeError) Bytes() []byte {
	return e.Object[e.Start:e.End]
}

func (e *DecodeError) LogValue() slog.Value {
	if e == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("encoding", e.Encoding),
		slog.Int("start", e.Start),
		slog.Int("end", e.End),
		slog.String("reason", string(e.Reason)),
		slog.String("bytes", bytelike.Repr(bytelike.Slice(e.Bytes()))),
	)
}
