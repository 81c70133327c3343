package scenario

import (
	"context"
	"fmt"
	"slices"

	"phonebook"
)

type Result struct {
	Step    int `yaml:"step"`
	Op      Op  `yaml:"op"`
	Outcome `yaml:",inline"`
}

// Run executes the steps in order and stops at the first step whose outcome
// differs from its expectation, or when ctx is done. The results of every
// executed step are returned in both cases.
func Run(ctx context.Context, book phonebook.Book, sc Scenario) ([]Result, error) {
	results := make([]Result, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("step %d: %w", i, err)
		}

		out := apply(book, step)
		results = append(results, Result{Step: i, Op: step.Op, Outcome: out})

		if step.Expect != nil && !step.Expect.matches(out) {
			return results, fmt.Errorf("step %d (%s): %w", i, step.Op, ErrMismatch)
		}
	}

	return results, nil
}

func apply(book phonebook.Book, step Step) Outcome {
	switch step.Op {
	case CreateUser:
		return Outcome{OK: ptr(book.CreateUser(step.Number, step.Name))}
	case AddCall:
		return Outcome{OK: ptr(book.AddCall(phonebook.Call{Number: step.Number, Duration: step.Duration}))}
	case GetCalls:
		return Outcome{Calls: callEntries(book.GetCalls(step.Start, step.Count))}
	case SearchByNumber:
		return Outcome{Users: userEntries(book.SearchUsersByNumber(step.Prefix, step.Count))}
	case SearchByName:
		return Outcome{Users: userEntries(book.SearchUsersByName(step.Prefix, step.Count))}
	case Size:
		return Outcome{Size: ptr(book.Size())}
	case Empty:
		return Outcome{Empty: ptr(book.Empty())}
	case Clear:
		book.Clear()
		return Outcome{}
	}

	panic("unvalidated scenario op " + string(step.Op))
}

func (want Outcome) matches(got Outcome) bool {
	if want.OK != nil && (got.OK == nil || *want.OK != *got.OK) {
		return false
	}
	if want.Size != nil && (got.Size == nil || *want.Size != *got.Size) {
		return false
	}
	if want.Empty != nil && (got.Empty == nil || *want.Empty != *got.Empty) {
		return false
	}
	if want.Calls != nil && !slices.Equal(want.Calls, got.Calls) {
		return false
	}
	if want.Users != nil && !slices.Equal(want.Users, got.Users) {
		return false
	}
	return true
}

func callEntries(calls []phonebook.Call) []CallEntry {
	out := make([]CallEntry, len(calls))
	for i, c := range calls {
		out[i] = CallEntry{Number: c.Number, Duration: c.Duration}
	}
	return out
}

func userEntries(infos []phonebook.UserInfo) []UserEntry {
	out := make([]UserEntry, len(infos))
	for i, info := range infos {
		out[i] = UserEntry{Number: info.User.Number, Name: info.User.Name, Duration: info.TotalCallDuration}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
