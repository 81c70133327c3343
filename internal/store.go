package internal

import (
	"phonebook/codec"
	"phonebook/storage"
)

// Find loads the record stored under key and decodes it into a fresh value.
func Find[R any](storage storage.Storage[[]byte], codec codec.Codec[R], key string) (R, bool) {
	recb, ok := storage.Get(key)
	if !ok {
		var r R
		return r, false
	}

	rec, err := codec.Decode(recb)
	if err != nil {
		panic("decoding stored record " + key + ": " + err.Error())
	}
	return rec, true
}
