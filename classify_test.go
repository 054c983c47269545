package byteseq_test

import "testing"

func TestBytes_Classification(t *testing.T) {
	t.Parallel()

	type preds struct {
		alnum, alpha, digit, lower, upper, space, title, ascii bool
	}
	cases := []struct {
		input string
		want  preds
	}{
		{"", preds{ascii: true}},
		{"abc", preds{alnum: true, alpha: true, lower: true, ascii: true}},
		{"ABC", preds{alnum: true, alpha: true, upper: true, ascii: true}},
		{"123", preds{alnum: true, digit: true, ascii: true}},
		{"abc1", preds{alnum: true, lower: true, ascii: true}},
		{"a b", preds{lower: true, ascii: true}},
		{" \t\n\r\v\f", preds{space: true, ascii: true}},
		{"Hello World", preds{title: true, ascii: true}},
		{"Hello world", preds{ascii: true}},
		{"HeLLo", preds{alnum: true, alpha: true, ascii: true}},
		{"He-Lo", preds{title: true, ascii: true}},
		{"A1 B2", preds{upper: true, title: true, ascii: true}},
		{"1a", preds{alnum: true, lower: true, ascii: true}},
		{"\xe9t\xe9", preds{lower: true}},
		{"\xc9", preds{}},
	}

	for _, c := range cases {
		b := mustBytes(t, c.input)
		got := preds{
			alnum: b.IsAlnum(),
			alpha: b.IsAlpha(),
			digit: b.IsDigit(),
			lower: b.IsLower(),
			upper: b.IsUpper(),
			space: b.IsSpace(),
			title: b.IsTitle(),
			ascii: b.IsASCII(),
		}
		if got != c.want {
			t.Errorf("Bytes(%q) predicates = %+v, want %+v", c.input, got, c.want)
		}
	}
}

func TestBytes_CaseMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input, upper, lower, capitalize string
	}{
		{"", "", "", ""},
		{"hello World", "HELLO WORLD", "hello world", "Hello world"},
		{"123abc", "123ABC", "123abc", "123abc"},
		{"\xe9aB", "\xe9AB", "\xe9ab", "\xe9ab"},
	}

	for _, c := range cases {
		b := mustBytes(t, c.input)
		if got := string(b.Upper().Bytes()); got != c.upper {
			t.Errorf("Bytes(%q).Upper() = %q, want %q", c.input, got, c.upper)
		}
		if got := string(b.Lower().Bytes()); got != c.lower {
			t.Errorf("Bytes(%q).Lower() = %q, want %q", c.input, got, c.lower)
		}
		if got := string(b.Capitalize().Bytes()); got != c.capitalize {
			t.Errorf("Bytes(%q).Capitalize() = %q, want %q", c.input, got, c.capitalize)
		}
	}
}
