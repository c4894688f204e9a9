package strview

import "bytes"

// Contains reports whether c occurs in the view.
func (v View) Contains(c byte) bool {
	return bytes.IndexByte(v.Raw(), c) >= 0
}

// FirstIndex returns the index of the first c in the view. found is false,
// and i is -1, when c does not occur.
func (v View) FirstIndex(c byte) (i int, found bool) {
	i = bytes.IndexByte(v.Raw(), c)
	return i, i >= 0
}

// LastIndex returns the index of the last c in the view. found is false,
// and i is -1, when c does not occur.
func (v View) LastIndex(c byte) (i int, found bool) {
	i = bytes.LastIndexByte(v.Raw(), c)
	return i, i >= 0
}

// Count returns the number of occurrences of c in the view.
func (v View) Count(c byte) int {
	return bytes.Count(v.Raw(), []byte{c})
}

// HasPrefix reports whether the view begins with prefix. An empty prefix
// always matches.
func (v View) HasPrefix(prefix View) bool {
	return bytes.HasPrefix(v.Raw(), prefix.Raw())
}

// HasSuffix reports whether the view ends with suffix. An empty suffix
// always matches.
func (v View) HasSuffix(suffix View) bool {
	return bytes.HasSuffix(v.Raw(), suffix.Raw())
}
