// Package directory implements an in-memory phone book.
//
// Three structures back it:
//
//	users	number -> encoded record{name, total duration}, ordered by number
//	names	name -> numbers of users with that name, ordered by name
//	calls	append-only call log
//
// users and names share a lifetime: a user is added to both in
// CreateUser and both are emptied together in Clear. Records are stored
// encoded, so every read decodes a value nobody else holds.
package directory

import (
	"fmt"
	"log/slog"

	"phonebook"
	"phonebook/codec"
	"phonebook/internal"
	"phonebook/storage"

	"github.com/samber/mo"
)

var _ phonebook.Book = (*Directory)(nil)

type record struct {
	Name              string  `bson:"name" json:"name"`
	TotalCallDuration float64 `bson:"total" json:"total"`
}

// Directory is not safe for concurrent use; wrap it with NewLocked to share
// it between goroutines.
type Directory struct {
	users  storage.Storage[[]byte]
	names  storage.Storage[[]string]
	calls  []phonebook.Call
	codec  codec.Codec[record]
	logger *slog.Logger
}

func New(opts ...Option) (*Directory, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c, err := codec.ByName[record](o.codec)
	if err != nil {
		return nil, fmt.Errorf("creating directory: %w", err)
	}
	if _, err := c.Encode(record{}); err != nil {
		return nil, fmt.Errorf("cannot create directory since user records are not serializable with %s: %w", c.Tag(), err)
	}

	return &Directory{
		users:  storage.New[[]byte](o.storage),
		names:  storage.New[[]string](o.storage),
		calls:  make([]phonebook.Call, 0),
		codec:  c,
		logger: o.logger.With(slog.String("storage", string(o.storage)), slog.String("codec", c.Tag())),
	}, nil
}

func (d *Directory) CreateUser(number, name string) bool {
	if _, ok := d.users.Get(number); ok {
		d.logger.Debug("user already exists", slog.String("number", number))
		return false
	}

	recb, err := d.codec.Encode(record{Name: name})
	if err != nil {
		d.logger.Error("encoding user record", slog.String("number", number), slog.Any("err", err))
		return false
	}
	// names are compared byte-wise; a codec that rewrites them (JSON turns
	// invalid UTF-8 into U+FFFD) would make the stored name drift from the
	// name index
	if stored, err := d.codec.Decode(recb); err != nil || stored.Name != name {
		d.logger.Error("user name does not survive encoding",
			slog.String("number", number), slog.String("codec", d.codec.Tag()))
		return false
	}

	d.users.Set(number, recb)

	numbers, _ := d.names.Get(name)
	d.names.Set(name, append(numbers[:len(numbers):len(numbers)], number))
	return true
}

func (d *Directory) AddCall(call phonebook.Call) bool {
	rec, ok := internal.Find(d.users, d.codec, call.Number)
	if !ok {
		d.logger.Debug("call for unknown user", slog.String("number", call.Number))
		return false
	}

	rec.TotalCallDuration += call.Duration
	recb, err := d.codec.Encode(rec)
	if err != nil {
		d.logger.Error("encoding user record", slog.String("number", call.Number), slog.Any("err", err))
		return false
	}

	d.users.Set(call.Number, recb)
	d.calls = append(d.calls, call)
	return true
}

func (d *Directory) GetCalls(startPos, count int) []phonebook.Call {
	start := min(max(startPos, 0), len(d.calls))
	n := min(max(count, 0), len(d.calls)-start)

	out := make([]phonebook.Call, n)
	copy(out, d.calls[start:start+n])
	return out
}

// CallCount is the length of the call log.
func (d *Directory) CallCount() int {
	return len(d.calls)
}

func (d *Directory) Lookup(number string) mo.Option[phonebook.UserInfo] {
	rec, ok := internal.Find(d.users, d.codec, number)
	if !ok {
		return mo.None[phonebook.UserInfo]()
	}
	return mo.Some(rec.info(number))
}

func (d *Directory) Clear() {
	d.logger.Debug("clearing directory",
		slog.Int("users", d.users.Len()), slog.Int("calls", len(d.calls)))

	d.users.Clear()
	d.names.Clear()
	d.calls = make([]phonebook.Call, 0)
}

func (d *Directory) Size() int {
	return d.users.Len()
}

func (d *Directory) Empty() bool {
	return d.Size() == 0
}

func (r record) info(number string) phonebook.UserInfo {
	return phonebook.UserInfo{
		User:              phonebook.User{Number: number, Name: r.Name},
		TotalCallDuration: r.TotalCallDuration,
	}
}
