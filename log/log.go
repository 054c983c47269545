// Package log provides the slog loggers used across the module.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/internal/constraints"
	"github.com/ghettovoice/byteseq/internal/util"
)

// MaxReprLen is the maximum length of a bytes literal rendered into a log record.
const MaxReprLen = 64

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(b bytelike.ByteLike) slog.Value {
		return slog.GroupValue(
			slog.String("repr", util.Ellipsis(bytelike.Repr(b), MaxReprLen)),
			slog.Int("len", b.Len()),
		)
	}),
)

// NewConsole returns a logger writing human-readable records to w.
func NewConsole(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev returns a developer logger writing colored, pretty-printed records to w.
func NewDev(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Def is a console logger writing records of level Info and above to stderr.
var Def = NewConsole(os.Stderr, slog.LevelInfo)

// Dev is a developer logger writing all records to stdout.
var Dev = NewDev(os.Stdout, slog.LevelDebug)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

var defLogger atomic.Pointer[slog.Logger]

func init() {
	defLogger.Store(Def)
}

// Default returns the logger used when no logger is configured explicitly.
// Initially it is [Def].
func Default() *slog.Logger { return defLogger.Load() }

// SetDefault replaces the default logger. A nil l restores [Def].
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = Def
	}
	defLogger.Store(l)
}

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
