package phonebook

import "github.com/samber/mo"

// Book is a phone book: users identified by number, a call log, and prefix
// searches over numbers and names.
type Book interface {
	Searcher

	// CreateUser adds a user. Returns false and changes nothing if the
	// number is already taken.
	CreateUser(number, name string) bool
	// AddCall appends a call to the log and adds its duration to the caller.
	// Returns false and changes nothing if the number is unknown.
	AddCall(call Call) bool
	// GetCalls returns at most count calls starting from startPos in the
	// order they were added. Out of range arguments are clamped.
	GetCalls(startPos, count int) []Call

	Clear()
	Size() int
	Empty() bool
}

// Searcher answers read-only queries over users.
type Searcher interface {
	// SearchUsersByNumber returns at most count users whose number starts
	// with prefix, ordered by total call duration (descending), name, number.
	SearchUsersByNumber(prefix string, count int) []UserInfo
	// SearchUsersByName returns at most count users whose name starts with
	// prefix, ordered by name, total call duration (descending), number.
	SearchUsersByName(prefix string, count int) []UserInfo
	Lookup(number string) mo.Option[UserInfo]
}
