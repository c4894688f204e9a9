package strview

import "bytes"

// Compare orders a and b byte by byte over their common length,
// min(a.Size(), b.Size()), and returns -1, 0 or +1.
//
// The length difference is not a tiebreak: a view compares equal to any
// of its prefixes, so Compare(FromString("ab"), FromString("abc")) == 0.
// Use Equal for full equality, or bytes.Compare on Raw() for the usual
// lexicographic order.
func Compare(a, b View) int {
	k := min(a.n, b.n)
	return bytes.Compare(a.Raw()[:k], b.Raw()[:k])
}

// Equal reports whether a and b have the same length and the same bytes.
// Where the bytes live does not matter.
func Equal(a, b View) bool {
	return bytes.Equal(a.Raw(), b.Raw())
}
