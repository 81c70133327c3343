// Package codec turns stored records into bytes and back.
package codec

import "fmt"

type (
	Encode[T any] func(value T) ([]byte, error)
	Decode[T any] func(data []byte) (T, error)
)

type Codec[T any] struct {
	encode Encode[T]
	decode Decode[T]
	tag    string
}

func (c *Codec[T]) Encode(value T) ([]byte, error) {
	return c.encode(value)
}

func (c *Codec[T]) Decode(data []byte) (T, error) {
	return c.decode(data)
}

// Tag is the struct tag key the codec reads field names from.
func (c *Codec[T]) Tag() string {
	return c.tag
}

// ByName returns the codec registered under name ("bson" or "json").
func ByName[T any](name string) (Codec[T], error) {
	switch name {
	case "bson", "":
		return NewBsonCodec[T](), nil
	case "json":
		return NewJsonCodec[T](), nil
	}

	return Codec[T]{}, fmt.Errorf("unknown codec %q", name)
}
