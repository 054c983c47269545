package byteseq

import "github.com/ghettovoice/byteseq/internal/errorutil"

// Error kinds. Every error returned by the module matches one of them with [errors.Is].
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	ErrValue           = errorutil.ErrValue
	ErrType            = errorutil.ErrType
	ErrIndex           = errorutil.ErrIndex
	ErrLookup          = errorutil.ErrLookup
	ErrUnicodeDecode   = errorutil.ErrUnicodeDecode
)

// Error is a string error kind.
// See [errorutil.Error].
type Error = errorutil.Error

// KindOf returns the error kind matched by err, or an empty Error for foreign errors.
// Decode errors report [ErrUnicodeDecode] although they also match [ErrValue].
func KindOf(err error) Error { return errorutil.Kind(err) }
