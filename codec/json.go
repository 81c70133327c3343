package codec

import (
	"encoding/json"
	"fmt"
)

// NewJsonCodec returns a codec backed by encoding/json. Floats survive a
// round trip exactly, but NaN and infinities cannot be encoded.
func NewJsonCodec[T any]() Codec[T] {
	return Codec[T]{encode: JsonEncode[T], decode: JsonDecode[T], tag: "json"}
}

func JsonEncode[T any](value T) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("json encode %T: %w", value, err)
	}
	return b, nil
}

func JsonDecode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("json decode %T: %w", v, err)
	}
	return v, nil
}
