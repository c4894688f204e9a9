package strview

import (
	"github.com/vmihailenco/msgpack/v5"
)

var _ msgpack.CustomEncoder = View{}

// EncodeMsgpack encodes the view as a MessagePack str, reading the bytes
// straight from the caller's buffer.
func (v View) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(bytesToReadOnlyString(v.Raw()))
}
