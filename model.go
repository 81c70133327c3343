package phonebook

import "strconv"

// User is a phone-book entry. Number is unique in a book and never changes.
type User struct {
	Number string
	Name   string
}

// String formats the user as user{number: ...; name: ...}.
func (u User) String() string {
	return "user{number: " + u.Number + "; name: " + u.Name + "}"
}

// Call is a single call-log entry. Duration is in seconds.
type Call struct {
	Number   string
	Duration float64
}

// String formats the call as call{number: ...; duration: ...}.
func (c Call) String() string {
	return "call{number: " + c.Number + "; duration: " + formatSeconds(c.Duration) + "}"
}

// UserInfo is a snapshot of a user with the sum of their call durations.
// It is a plain value: later changes to the book never reach it.
type UserInfo struct {
	User              User
	TotalCallDuration float64
}

// String formats the snapshot as user_info{user: ...; duration: ...}.
func (i UserInfo) String() string {
	return "user_info{user: " + i.User.String() + "; duration: " + formatSeconds(i.TotalCallDuration) + "}"
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'g', -1, 64)
}
