package directory

import (
	"sync"

	"phonebook"

	"github.com/samber/mo"
)

var _ phonebook.Book = (*Locked)(nil)

// Locked guards a book with a reader/writer lock: mutations run alone,
// queries may run side by side.
type Locked struct {
	book phonebook.Book
	mx   sync.RWMutex
}

func NewLocked(book phonebook.Book) *Locked {
	return &Locked{book: book}
}

func (l *Locked) CreateUser(number, name string) bool {
	l.mx.Lock()
	defer l.mx.Unlock()

	return l.book.CreateUser(number, name)
}

func (l *Locked) AddCall(call phonebook.Call) bool {
	l.mx.Lock()
	defer l.mx.Unlock()

	return l.book.AddCall(call)
}

func (l *Locked) Clear() {
	l.mx.Lock()
	defer l.mx.Unlock()

	l.book.Clear()
}

func (l *Locked) GetCalls(startPos, count int) []phonebook.Call {
	l.mx.RLock()
	defer l.mx.RUnlock()

	return l.book.GetCalls(startPos, count)
}

func (l *Locked) SearchUsersByNumber(prefix string, count int) []phonebook.UserInfo {
	l.mx.RLock()
	defer l.mx.RUnlock()

	return l.book.SearchUsersByNumber(prefix, count)
}

func (l *Locked) SearchUsersByName(prefix string, count int) []phonebook.UserInfo {
	l.mx.RLock()
	defer l.mx.RUnlock()

	return l.book.SearchUsersByName(prefix, count)
}

func (l *Locked) Lookup(number string) mo.Option[phonebook.UserInfo] {
	l.mx.RLock()
	defer l.mx.RUnlock()

	return l.book.Lookup(number)
}

func (l *Locked) Size() int {
	l.mx.RLock()
	defer l.mx.RUnlock()

	return l.book.Size()
}

func (l *Locked) Empty() bool {
	l.mx.RLock()
	defer l.mx.RUnlock()

	return l.book.Empty()
}
