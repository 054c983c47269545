package byteseq_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/byteseq"
)

func TestFromHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    string
		wantErr string
	}{
		{"", "", ""},
		{"6162", "ab", ""},
		{" 61 62\t\n", "ab", ""},
		{"DEadBEef", "\xde\xad\xbe\xef", ""},
		{"62 a 21", "", "position 4"},
		{"6Z2", "", "position 1"},
		{"abc", "", "position 3"},
		{"6 2", "", "position 1"},
		{"zz", "", "position 0"},
	}

	for _, c := range cases {
		got, err := byteseq.FromHex(c.input)
		if c.wantErr != "" {
			if !cmp.Equal(err, byteseq.ErrValue, cmpopts.EquateErrors()) {
				t.Errorf("byteseq.FromHex(%q) error = %v, want %v", c.input, err, byteseq.ErrValue)
				continue
			}
			want := "non-hexadecimal number found in fromhex() arg at " + c.wantErr
			if !strings.Contains(err.Error(), want) {
				t.Errorf("byteseq.FromHex(%q) error = %q, want to contain %q", c.input, err, want)
			}
			continue
		}
		if err != nil {
			t.Errorf("byteseq.FromHex(%q) error = %v, want nil", c.input, err)
			continue
		}
		if string(got.Bytes()) != c.want {
			t.Errorf("byteseq.FromHex(%q) = %v, want %q", c.input, got, c.want)
		}
	}
}

func TestBytes_Hex_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "a", "\x00\x01\xfe\xff", "hello world"} {
		b := mustBytes(t, s)
		h := b.Hex()
		if h != strings.ToLower(h) || len(h) != 2*b.Len() {
			t.Errorf("Bytes(%q).Hex() = %q, want %d lowercase digits", s, h, 2*b.Len())
		}
		got, err := byteseq.FromHex(h)
		if err != nil {
			t.Fatalf("byteseq.FromHex(%q) error = %v, want nil", h, err)
		}
		if !got.Equal(b) {
			t.Errorf("byteseq.FromHex(%q) = %v, want %v", h, got, b)
		}
	}
}
