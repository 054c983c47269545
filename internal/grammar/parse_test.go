package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/byteseq/internal/grammar"
)

func TestNormalizeCodecName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   any
		want    string
		wantErr error
	}{
		{"empty", "", "", grammar.ErrEmptyInput},
		{"dashed", "utf-8", "utf_8", nil},
		{"upper", "UTF8", "utf8", nil},
		{"underscored", "UTF_8", "utf_8", nil},
		{"padded", "  Utf--8 ", "utf_8", nil},
		{"dots kept", "latin.1", "latin.1", nil},
		{"only separators", "-- ", "", nil},
		{"non-ascii kept", "utf-8\xc3\xa9", "utf_8\xc3\xa9", nil},
		{"bytes", []byte("U8"), "u8", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var (
				got string
				err error
			)
			switch in := c.input.(type) {
			case string:
				got, err = grammar.NormalizeCodecName(in)
			case []byte:
				got, err = grammar.NormalizeCodecName(in)
			}
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("grammar.NormalizeCodecName(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.input, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("grammar.NormalizeCodecName(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestParseCodecName(t *testing.T) {
	t.Parallel()

	got, err := grammar.ParseCodecName("utf-8/ucs4")
	if err != nil {
		t.Fatalf("grammar.ParseCodecName(\"utf-8/ucs4\") error = %v, want nil", err)
	}
	want := [][]byte{[]byte("utf"), []byte("8"), []byte("ucs4")}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("grammar.ParseCodecName(\"utf-8/ucs4\") = %q, want %q\ndiff (-got +want):\n%v", got, want, diff)
	}
}

func TestIsHex(t *testing.T) {
	t.Parallel()

	for c := range 256 {
		b := byte(c)
		want := '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
		if got := grammar.IsHex(b); got != want {
			t.Errorf("grammar.IsHex(%q) = %v, want %v", b, got, want)
		}
	}
	if got := grammar.Unhex('B')<<4 | grammar.Unhex('e'); got != 0xbe {
		t.Errorf("grammar.Unhex('B')<<4 | grammar.Unhex('e') = %#x, want 0xbe", got)
	}
}
