// Package strview provides View, a non-owning read-only window into
// caller-owned byte data, together with allocation-free search and
// split operations for scanning text.
//
// A View never copies the bytes it refers to. Go's garbage collector
// keeps the referenced buffer alive, but nothing prevents its owner
// from modifying it; callers that share views across goroutines must
// not mutate the underlying buffer concurrently.
package strview

import (
	"bytes"
	"errors"
	"unsafe"
)

// ErrOutOfRange is returned by the checked accessors when the index is
// outside [0, Size()).
var ErrOutOfRange = errors.New("strview: index out of range")

// View is a (buffer, offset, length) triple over caller-owned bytes.
//
// The zero View is the canonical empty view. Views are small values and
// are meant to be passed and copied by value.
//
// The == operator compares identity: two views are == when they cover
// the same bytes of the same buffer. Use Equal to compare content.
type View struct {
	base *byte // start of the referenced buffer, nil only for the zero View
	off  int
	n    int
}

// Pos is a position inside a buffer, possibly one past its last byte.
//
// Positions taken from views that share a lineage (one view and the
// views split or sliced from it) are == when they name the same byte.
// Views built separately over sub-slices of one buffer record different
// starting points, so compare their positions with Equal.
type Pos struct {
	base *byte
	off  int
}

// Offset returns the position's distance from the start of the view
// lineage it was taken from.
func (p Pos) Offset() int { return p.off }

// Equal reports whether p and q name the same address. Positions of the
// zero View are only Equal to each other.
func (p Pos) Equal(q Pos) bool {
	if p.base == nil || q.base == nil {
		return p == q
	}
	return addrDiff(p.base, q.base) == p.off-q.off
}

// Empty returns the canonical zero-length View.
func Empty() View {
	return View{}
}

// FromParts returns a View over data[:n]. n may extend up to cap(data).
// The arguments are not validated beyond Go's slice bounds check, so an
// n outside [0, cap(data)] panics.
func FromParts(data []byte, n int) View {
	data = data[:n]
	return View{base: unsafe.SliceData(data), n: n}
}

// FromBytes returns a View over all of b.
func FromBytes(b []byte) View {
	return FromParts(b, len(b))
}

// FromString returns a View over the bytes of s without copying them.
func FromString(s string) View {
	return FromBytes(stringToReadOnlyBytes(s))
}

// FromRange returns a View over the half-open range between start and
// end. If start lies after end the two are swapped first, so
// FromRange(a, b) and FromRange(b, a) cover the same bytes.
//
// Both positions must point into the same buffer, but they may come
// from different views of it, such as FromBytes(buf[:3]) and
// FromBytes(buf[4:]). Mixing a position of the zero View with any other
// position panics. Positions from unrelated buffers are not detected.
func FromRange(start, end Pos) View {
	if (start.base == nil) != (end.base == nil) {
		panic("strview: FromRange positions belong to different buffers")
	}

	// Re-express both offsets against the lower of the two starting points
	base, a, b := start.base, start.off, end.off
	if end.base != start.base {
		if d := addrDiff(start.base, end.base); d >= 0 {
			b += d
		} else {
			base, a = end.base, a-d
		}
	}
	lo, hi := min(a, b), max(a, b)
	return View{base: base, off: lo, n: hi - lo}
}

// FromCString returns a View over data up to, not including, its first
// NUL byte. It panics if data holds no NUL byte.
func FromCString(data []byte) View {
	n := bytes.IndexByte(data, 0)
	if n < 0 {
		panic("strview: FromCString data is not NUL terminated")
	}
	return FromParts(data, n)
}

// Size returns the number of bytes in the view.
func (v View) Size() int { return v.n }

// IsEmpty reports whether the view has no bytes.
func (v View) IsEmpty() bool { return v.n == 0 }

// Raw returns the viewed bytes. The slice aliases the caller's buffer
// and its capacity equals its length, so appending to it never writes
// into the buffer. The returned bytes MUST NOT be modified.
//
// No terminator follows the last byte, even for views built with
// FromCString.
func (v View) Raw() []byte {
	if v.base == nil {
		return nil
	}
	end := v.off + v.n
	return unsafe.Slice(v.base, end)[v.off:end:end]
}

// At returns the byte at index i. Indexes outside [0, Size()) panic.
func (v View) At(i int) byte {
	return v.Raw()[i]
}

// AtChecked returns the byte at index i, or ErrOutOfRange.
func (v View) AtChecked(i int) (byte, error) {
	if uint(i) >= uint(v.n) {
		return 0, ErrOutOfRange
	}
	return v.Raw()[i], nil
}

// Ref returns a pointer to the byte at index i inside the caller's
// buffer. Indexes outside [0, Size()) panic.
func (v View) Ref(i int) *byte {
	return &v.Raw()[i]
}

// RefChecked returns a pointer to the byte at index i, or ErrOutOfRange.
func (v View) RefChecked(i int) (*byte, error) {
	if uint(i) >= uint(v.n) {
		return nil, ErrOutOfRange
	}
	return &v.Raw()[i], nil
}

// Begin returns the position of the view's first byte.
func (v View) Begin() Pos {
	return Pos{base: v.base, off: v.off}
}

// End returns the position one past the view's last byte.
func (v View) End() Pos {
	return Pos{base: v.base, off: v.off + v.n}
}

// PosAt returns the position of index i. i may equal Size(), naming
// the end of the view; anything outside [0, Size()] panics.
func (v View) PosAt(i int) Pos {
	if uint(i) > uint(v.n) {
		panic(ErrOutOfRange)
	}
	return Pos{base: v.base, off: v.off + i}
}

// Slice returns the sub-view [i, j). Bounds outside 0 <= i <= j <= Size()
// panic.
func (v View) Slice(i, j int) View {
	if i < 0 || j < i || j > v.n {
		panic(ErrOutOfRange)
	}
	return View{base: v.base, off: v.off + i, n: j - i}
}

// tail is the zero-length view positioned at End().
func (v View) tail() View {
	return View{base: v.base, off: v.off + v.n}
}
