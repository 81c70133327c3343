package codec

import (
	"fmt"

	"gopkg.in/mgo.v2/bson"
)

// NewBsonCodec returns a codec backed by BSON documents. Floats are kept as
// BSON doubles, so every float64 survives a round trip bit for bit.
// T must be a struct or a map: BSON has no top-level scalars.
func NewBsonCodec[T any]() Codec[T] {
	return Codec[T]{encode: BsonEncode[T], decode: BsonDecode[T], tag: "bson"}
}

func BsonEncode[T any](value T) ([]byte, error) {
	b, err := bson.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("bson encode %T: %w", value, err)
	}
	return b, nil
}

func BsonDecode[T any](data []byte) (T, error) {
	var v T
	if err := bson.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("bson decode %T: %w", v, err)
	}
	return v, nil
}
