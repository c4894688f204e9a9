package strview

import (
	"bytes"
	"iter"
)

// Split cuts the view around the first occurrence of delim.
//
// If delim is found at index i, pre covers [0, i), post covers
// [i+1, Size()) and found is true. Otherwise pre is the view itself and
// post is the zero-length view positioned at v.End(), so
// post.Begin() == v.End().
//
// Callers that need only one half discard the other with _.
func (v View) Split(delim byte) (pre, post View, found bool) {
	return v.SplitBounded(delim, v.n)
}

// SplitBounded is Split, but only the first min(limit, Size()) bytes are
// searched for delim. A match splits the whole view exactly as Split
// does: post still runs to the end of v. A negative limit searches
// nothing.
func (v View) SplitBounded(delim byte, limit int) (pre, post View, found bool) {
	limit = max(min(limit, v.n), 0)
	i := bytes.IndexByte(v.Raw()[:limit], delim)
	if i < 0 {
		return v, v.tail(), false
	}
	pre = View{base: v.base, off: v.off, n: i}
	post = View{base: v.base, off: v.off + i + 1, n: v.n - i - 1}
	return pre, post, true
}

// Tokens returns an iterator over the pieces of the view separated by
// delim. Empty pieces are yielded too: "a,,b," gives "a", "", "b", "".
// An empty view yields a single empty piece.
func (v View) Tokens(delim byte) iter.Seq[View] {
	return func(yield func(View) bool) {
		rest := v
		for {
			pre, post, found := rest.Split(delim)
			if !yield(pre) || !found {
				return
			}
			rest = post
		}
	}
}
