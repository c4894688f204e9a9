//go:build go1.20

package strview

import (
	"unsafe"
)

// stringToReadOnlyBytes converts a string to a read-only []byte slice using unsafe.
// This avoids the allocation that would occur with []byte(s).
//
// SAFETY REQUIREMENTS:
// - The returned []byte MUST NOT be modified
// - The returned slice keeps the string's backing array alive like any other reference
//
// Views built by FromString rely on this: every View operation is read-only.
func stringToReadOnlyBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// bytesToReadOnlyString is the inverse of stringToReadOnlyBytes. It lets
// encoders that only accept strings read a view's bytes without copying.
//
// SAFETY REQUIREMENTS:
// - The string MUST NOT outlive the call it is passed to if the buffer may change
// - Go assumes strings are immutable; mutating b while the string is in use is undefined
func bytesToReadOnlyString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// addrDiff returns the distance in bytes from a to b. Both pointers are
// converted in the same expression, so a stack move between them cannot
// skew the result.
func addrDiff(a, b *byte) int {
	return int(uintptr(unsafe.Pointer(b)) - uintptr(unsafe.Pointer(a)))
}
