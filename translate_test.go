package byteseq_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/byteseq"
	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/codec"
	"github.com/ghettovoice/byteseq/internal/util"
	"github.com/ghettovoice/byteseq/log"
)

func TestBytes_Translate(t *testing.T) {
	t.Parallel()

	table, err := byteseq.MakeTrans(bytelike.Slice("hj"), bytelike.Slice("ab"))
	if err != nil {
		t.Fatalf("byteseq.MakeTrans(hj, ab) error = %v, want nil", err)
	}
	if table.Len() != 256 {
		t.Fatalf("byteseq.MakeTrans(hj, ab).Len() = %d, want 256", table.Len())
	}

	b := mustBytes(t, "hjhtuyjyujuyj")
	got, err := b.Translate(table, bytelike.Slice("h"))
	if err != nil {
		t.Fatalf("Bytes.Translate() error = %v, want nil", err)
	}
	if want := "btuybyubuyb"; string(got.Bytes()) != want {
		t.Errorf("Bytes.Translate(table, h) = %q, want %q", got.Bytes(), want)
	}

	got, err = b.Translate(nil, bytelike.Slice("jy"))
	if err != nil {
		t.Fatalf("Bytes.Translate(nil, jy) error = %v, want nil", err)
	}
	if want := "hhtuuu"; string(got.Bytes()) != want {
		t.Errorf("Bytes.Translate(nil, jy) = %q, want %q", got.Bytes(), want)
	}
}

func TestBytes_Translate_Errors(t *testing.T) {
	t.Parallel()

	if _, err := byteseq.MakeTrans(bytelike.Slice("abc"), bytelike.Slice("ab")); !cmp.Equal(err, byteseq.ErrValue, cmpopts.EquateErrors()) {
		t.Errorf("byteseq.MakeTrans(abc, ab) error = %v, want %v", err, byteseq.ErrValue)
	}
	if _, err := mustBytes(t, "x").Translate(bytelike.Slice("short"), nil); !cmp.Equal(err, byteseq.ErrValue, cmpopts.EquateErrors()) {
		t.Errorf("Bytes.Translate(short) error = %v, want %v", err, byteseq.ErrValue)
	}
}

var malformed = []int{169, 195, 169, 97, 101, 169, 169, 195, 169, 105, 169, 195, 169}

func TestBytes_Decode(t *testing.T) {
	t.Parallel()

	b := util.Must2(byteseq.FromInts(malformed))

	cases := []struct {
		encoding, errors string
		want             string
		wantErr          error
	}{
		{"utf-8", "replace", "�éae��éi�é", nil},
		{"UTF8", "ignore", "éaeéié", nil},
		{"", "backslashreplace", `\xa9éae\xa9\xa9éi\xa9é`, nil},
		{"utf-8", "strict", "", byteseq.ErrUnicodeDecode},
		{"", "", "", byteseq.ErrValue},
		{"latin-1", "strict", "", byteseq.ErrLookup},
		{"utf-8", "surrogateescape", "", byteseq.ErrLookup},
	}

	for _, c := range cases {
		t.Run(c.encoding+"/"+c.errors, func(t *testing.T) {
			t.Parallel()

			got, err := b.Decode(c.encoding, c.errors)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Bytes.Decode(%q, %q) error = %v, want %v\ndiff (-got +want):\n%v", c.encoding, c.errors, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("Bytes.Decode(%q, %q) = %q, want %q", c.encoding, c.errors, got, c.want)
			}
		})
	}
}

func TestBytes_Decode_StrictError(t *testing.T) {
	t.Parallel()

	b := util.Must2(byteseq.FromInts(malformed))
	_, err := b.Decode("utf-8", "strict")

	var de *codec.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Bytes.Decode() error = %v, want *codec.DecodeError", err)
	}
	if de.Start != 0 || de.End != 1 || de.Reason != codec.ReasonInvalidStart {
		t.Errorf("Bytes.Decode() error = %+v, want [0, 1) invalid start byte", de)
	}
	if want := "'utf-8' codec can't decode byte 0xa9 in position 0: invalid start byte"; de.Error() != want {
		t.Errorf("codec.DecodeError.Error() = %q, want %q", de.Error(), want)
	}
}

func TestBytes_DecodeWith(t *testing.T) {
	t.Parallel()

	d, err := codec.NewDecoder("u8", &codec.DecodeOptions{Policy: codec.Replace, Log: log.Noop})
	if err != nil {
		t.Fatalf("codec.NewDecoder() error = %v, want nil", err)
	}
	got, err := mustBytes(t, "ok\xff").DecodeWith(d)
	if err != nil {
		t.Fatalf("Bytes.DecodeWith() error = %v, want nil", err)
	}
	if want := "ok�"; got != want {
		t.Errorf("Bytes.DecodeWith() = %q, want %q", got, want)
	}
}

func TestFromString(t *testing.T) {
	t.Parallel()

	b, err := byteseq.FromString("naïve", "utf_8")
	if err != nil {
		t.Fatalf("byteseq.FromString() error = %v, want nil", err)
	}
	if got, err := b.Decode("", ""); err != nil || got != "naïve" {
		t.Errorf("Bytes.Decode() = %q, %v, want %q, nil", got, err, "naïve")
	}
	if _, err := byteseq.FromString("x", "utf-32"); !cmp.Equal(err, byteseq.ErrLookup, cmpopts.EquateErrors()) {
		t.Errorf("byteseq.FromString(x, utf-32) error = %v, want %v", err, byteseq.ErrLookup)
	}
}

func TestBytes_Decode_ResolvesEncodingFirst(t *testing.T) {
	t.Parallel()

	_, err := mustBytes(t, "abc").Decode("latin-1", "bogus")
	if !errors.Is(err, byteseq.ErrLookup) {
		t.Fatalf("Bytes.Decode(latin-1, bogus) error = %v, want %v", err, byteseq.ErrLookup)
	}
	if want := "unknown encoding: latin-1"; !strings.Contains(err.Error(), want) {
		t.Errorf("Bytes.Decode(latin-1, bogus) error = %q, want to contain %q", err, want)
	}
}
