package byteseq

import "github.com/ghettovoice/byteseq/internal/grammar"

// Classification and case mapping only consider ASCII; all other bytes are uncased.

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }

func isAlpha(c byte) bool { return isUpper(c) || isLower(c) }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func toUpper(c byte) byte {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}

func toLower(c byte) byte {
	if isUpper(c) {
		return c - 'A' + 'a'
	}
	return c
}

func (b Bytes) all(pred func(byte) bool) bool {
	src := b.raw()
	if len(src) == 0 {
		return false
	}
	for _, c := range src {
		if !pred(c) {
			return false
		}
	}
	return true
}

// IsAlnum reports whether b is non-empty and all bytes are ASCII letters or digits.
func (b Bytes) IsAlnum() bool { return b.all(grammar.IsAlphanumChar) }

// IsAlpha reports whether b is non-empty and all bytes are ASCII letters.
func (b Bytes) IsAlpha() bool { return b.all(isAlpha) }

// IsDigit reports whether b is non-empty and all bytes are ASCII digits.
func (b Bytes) IsDigit() bool { return b.all(isDigit) }

// IsSpace reports whether b is non-empty and all bytes are ASCII whitespace.
func (b Bytes) IsSpace() bool { return b.all(grammar.IsSpace) }

// IsASCII reports whether all bytes are below 0x80. An empty b is ASCII.
func (b Bytes) IsASCII() bool {
	for _, c := range b.raw() {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// IsLower reports whether b has at least one lowercase letter and no uppercase letters.
func (b Bytes) IsLower() bool {
	cased := false
	for _, c := range b.raw() {
		if isUpper(c) {
			return false
		}
		cased = cased || isLower(c)
	}
	return cased
}

// IsUpper reports whether b has at least one uppercase letter and no lowercase letters.
func (b Bytes) IsUpper() bool {
	cased := false
	for _, c := range b.raw() {
		if isLower(c) {
			return false
		}
		cased = cased || isUpper(c)
	}
	return cased
}

// IsTitle reports whether b has at least one cased letter, every uppercase letter
// follows an uncased byte and every lowercase letter follows a cased one.
func (b Bytes) IsTitle() bool {
	cased, prevCased := false, false
	for _, c := range b.raw() {
		switch {
		case isUpper(c):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case isLower(c):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

func (b Bytes) mapBytes(fn func(i int, c byte) byte) Bytes {
	src := b.raw()
	if len(src) == 0 {
		return Bytes{}
	}
	buf := make([]byte, len(src))
	for i, c := range src {
		buf[i] = fn(i, c)
	}
	return wrap(buf)
}

// Upper returns a copy with ASCII lowercase letters converted to uppercase.
func (b Bytes) Upper() Bytes {
	return b.mapBytes(func(_ int, c byte) byte { return toUpper(c) })
}

// Lower returns a copy with ASCII uppercase letters converted to lowercase.
func (b Bytes) Lower() Bytes {
	return b.mapBytes(func(_ int, c byte) byte { return toLower(c) })
}

// Capitalize returns a copy with the first byte uppercased and the rest lowercased.
func (b Bytes) Capitalize() Bytes {
	return b.mapBytes(func(i int, c byte) byte {
		if i == 0 {
			return toUpper(c)
		}
		return toLower(c)
	})
}
