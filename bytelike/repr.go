package bytelike

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/byteseq/internal/ioutil"
	"github.com/ghettovoice/byteseq/internal/util"
)

const lowerhex = "0123456789abcdef"

// Repr renders b as a quoted bytes literal, like b'ab\x00'.
// Printable ASCII is kept as is, tab, line feed and carriage return are escaped
// as \t, \n and \r, other bytes as \xhh. Single quotes are used unless the content
// has a single quote and no double quote.
func Repr(b ByteLike) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	WriteRepr(sb, b) //nolint:errcheck
	return sb.String()
}

// WriteRepr writes the [Repr] form of b to w.
func WriteRepr(w io.Writer, b ByteLike) (num int, err error) {
	quote := byte('\'')
	if b != nil {
		var sq, dq bool
		for _, c := range b.All() {
			switch c {
			case '\'':
				sq = true
			case '"':
				dq = true
			}
		}
		if sq && !dq {
			quote = '"'
		}
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteByte('b')   //nolint:errcheck
	cw.WriteByte(quote) //nolint:errcheck
	if b != nil {
		var esc [4]byte
		for _, c := range b.All() {
			switch {
			case c == quote || c == '\\':
				esc[0], esc[1] = '\\', c
				cw.Write(esc[:2]) //nolint:errcheck
			case c == '\t':
				cw.WriteString(`\t`) //nolint:errcheck
			case c == '\n':
				cw.WriteString(`\n`) //nolint:errcheck
			case c == '\r':
				cw.WriteString(`\r`) //nolint:errcheck
			case c < ' ' || c >= 0x7f:
				esc = [4]byte{'\\', 'x', lowerhex[c>>4], lowerhex[c&15]}
				cw.Write(esc[:]) //nolint:errcheck
			default:
				cw.WriteByte(c) //nolint:errcheck
			}
			if cw.Err() != nil {
				break
			}
		}
	}
	cw.WriteByte(quote) //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}
