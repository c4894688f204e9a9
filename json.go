package strview

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// jsonAPI is jsoniter's fastest configuration. HTML characters are
// written as-is.
var jsonAPI = jsoniter.ConfigFastest

// MarshalJSON encodes the view as a JSON string.
func (v View) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	v.writeJSON(stream)
	if stream.Error != nil {
		return nil, stream.Error
	}

	// The stream's buffer goes back to the pool.
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// writeJSON writes the view as a JSON string straight from the
// caller's buffer. JSON text must be UTF-8, so each byte that is not
// part of a valid sequence is written as U+FFFD, as encoding/json does.
func (v View) writeJSON(stream *jsoniter.Stream) {
	b := v.Raw()
	if utf8.Valid(b) {
		stream.WriteString(bytesToReadOnlyString(b))
		return
	}
	stream.WriteString(replaceInvalidUTF8(b))
}

// replaceInvalidUTF8 copies b, replacing every invalid byte with U+FFFD.
func replaceInvalidUTF8(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) + 2*utf8.UTFMax)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}

// viewEncoder lets jsoniter encode views inside larger values without
// going through MarshalJSON and its extra copy.
type viewEncoder struct{}

func (viewEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return (*View)(ptr).n == 0
}

func (viewEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	(*View)(ptr).writeJSON(stream)
}

func init() {
	jsoniter.RegisterTypeEncoder("strview.View", viewEncoder{})
}
