package strview

import (
	"fmt"
	"io"
)

// String returns a copy of the viewed bytes as a string.
func (v View) String() string {
	return string(v.Raw())
}

// Format renders exactly Size() bytes for the %s, %v, %q, %x and %X
// verbs, honouring width, precision and flags, without first copying
// the view into a string.
func (v View) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'q', 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.Raw())
	case 'v':
		if f.Flag('#') {
			fmt.Fprintf(f, "strview.View(%q)", v.Raw())
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, 's'), v.Raw())
	default:
		fmt.Fprintf(f, "%%!%c(strview.View=%s)", verb, v.Raw())
	}
}

// WriteTo writes the viewed bytes to w.
func (v View) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.Raw())
	return int64(n), err
}
