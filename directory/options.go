package directory

import (
	"log/slog"

	"phonebook/storage"
)

type options struct {
	storage storage.Kind
	codec   string
	logger  *slog.Logger
}

type Option func(*options)

// WithStorage picks the structure backing both the user table and the name
// index. Defaults to storage.SkipMap.
func WithStorage(kind storage.Kind) Option {
	return func(o *options) { o.storage = kind }
}

// WithCodec picks the encoding of stored user records, "bson" (default) or
// "json". JSON cannot hold NaN or infinite call totals.
func WithCodec(name string) Option {
	return func(o *options) { o.codec = name }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() options {
	return options{
		storage: storage.SkipMap,
		codec:   "bson",
		logger:  slog.Default(),
	}
}
