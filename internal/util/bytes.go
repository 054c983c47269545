package util

// CloneBytes returns a copy of b that never aliases it; nil and empty input both give an empty non-nil slice.
func CloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
