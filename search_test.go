package byteseq_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/byteseq"
	"github.com/ghettovoice/byteseq/bytelike"
	"github.com/ghettovoice/byteseq/search"
	"github.com/ghettovoice/byteseq/slice"
)

func TestBytes_Count(t *testing.T) {
	t.Parallel()

	b := mustBytes(t, "azeazerazeazopia")
	cases := []struct {
		name        string
		p           search.Pattern
		start, stop slice.Bound
		want        int
		wantErr     error
	}{
		{"substring", search.Sub(bytelike.Slice("aze")), slice.None, slice.None, 3, nil},
		{"byte", search.Byte('a'), slice.None, slice.None, 5, nil},
		{"empty", search.Sub(nil), slice.None, slice.None, b.Len() + 1, nil},
		{"bounded", search.Sub(bytelike.Slice("aze")), slice.Int(1), slice.Int(-3), 2, nil},
		{"start past end", search.Sub(nil), slice.Int(100), slice.None, 0, nil},
		{"bad byte", search.Byte(256), slice.None, slice.None, 0, byteseq.ErrValue},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := b.Count(c.p, c.start, c.stop)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Bytes.Count(%v) error = %v, want %v\ndiff (-got +want):\n%v", c.p, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("Bytes.Count(%v) = %d, want %d", c.p, got, c.want)
			}
		})
	}
}

func TestBytes_FindIndexContains(t *testing.T) {
	t.Parallel()

	b := mustBytes(t, "hello world")

	if i, err := b.Find(search.Sub(bytelike.Slice("o")), slice.Int(5), slice.None); err != nil || i != 7 {
		t.Errorf("Bytes.Find(o, 5) = %d, %v, want 7, nil", i, err)
	}
	if i, err := b.Find(search.Sub(bytelike.Slice("z")), slice.None, slice.None); err != nil || i != -1 {
		t.Errorf("Bytes.Find(z) = %d, %v, want -1, nil", i, err)
	}
	if _, err := b.Index(search.Sub(bytelike.Slice("z")), slice.None, slice.None); !cmp.Equal(err, byteseq.ErrValue, cmpopts.EquateErrors()) {
		t.Errorf("Bytes.Index(z) error = %v, want %v", err, byteseq.ErrValue)
	}
	if ok, err := b.Contains(search.Byte('w')); err != nil || !ok {
		t.Errorf("Bytes.Contains('w') = %v, %v, want true, nil", ok, err)
	}
	if _, err := b.Contains(search.Byte(-1)); !cmp.Equal(err, byteseq.ErrValue, cmpopts.EquateErrors()) {
		t.Errorf("Bytes.Contains(-1) error = %v, want %v", err, byteseq.ErrValue)
	}
}

func TestBytes_StartsEndsWith(t *testing.T) {
	t.Parallel()

	b := mustBytes(t, "hello world")
	alts := []bytelike.ByteLike{bytelike.Slice("x"), bytelike.Slice("hell")}

	if !b.StartsWith(alts, slice.None, slice.None) {
		t.Error("Bytes.StartsWith(x|hell) = false, want true")
	}
	if b.StartsWith(alts, slice.Int(1), slice.None) {
		t.Error("Bytes.StartsWith(x|hell, 1) = true, want false")
	}
	if !b.EndsWith([]bytelike.ByteLike{bytelike.Slice("wor")}, slice.None, slice.Int(-2)) {
		t.Error("Bytes.EndsWith(wor, :-2) = false, want true")
	}
	if b.EndsWith(nil, slice.None, slice.None) {
		t.Error("Bytes.EndsWith() = true, want false")
	}
}
