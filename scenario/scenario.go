// Package scenario replays a scripted list of operations against a
// phonebook.Book and checks the outcomes the script expects.
//
// A scenario is a YAML document:
//
//	steps:
//	  - op: create_user
//	    number: "123"
//	    name: Ivan
//	    expect: {ok: true}
//	  - op: add_call
//	    number: "123"
//	    duration: 10
//	  - op: search_by_number
//	    prefix: ""
//	    count: 100
//	    expect:
//	      users: [{number: "123", name: Ivan, duration: 10}]
package scenario

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrMismatch  = errors.New("outcome does not match expectation")
)

type Op string

const (
	CreateUser     Op = "create_user"
	AddCall        Op = "add_call"
	GetCalls       Op = "get_calls"
	SearchByNumber Op = "search_by_number"
	SearchByName   Op = "search_by_name"
	Size           Op = "size"
	Empty          Op = "empty"
	Clear          Op = "clear"
)

func (op Op) valid() bool {
	switch op {
	case CreateUser, AddCall, GetCalls, SearchByNumber, SearchByName, Size, Empty, Clear:
		return true
	}
	return false
}

type Scenario struct {
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Op       Op       `yaml:"op"`
	Number   string   `yaml:"number,omitempty"`
	Name     string   `yaml:"name,omitempty"`
	Duration float64  `yaml:"duration,omitempty"`
	Prefix   string   `yaml:"prefix,omitempty"`
	Start    int      `yaml:"start,omitempty"`
	Count    int      `yaml:"count,omitempty"`
	Expect   *Outcome `yaml:"expect,omitempty"`
}

// Outcome is what a step produced. Only the fields the step's operation
// fills are set. In an expectation, unset fields are not checked; an
// explicit empty list (calls: []) expects an empty result.
type Outcome struct {
	OK    *bool       `yaml:"ok,omitempty"`
	Size  *int        `yaml:"size,omitempty"`
	Empty *bool       `yaml:"empty,omitempty"`
	Calls []CallEntry `yaml:"calls,omitempty"`
	Users []UserEntry `yaml:"users,omitempty"`
}

type CallEntry struct {
	Number   string  `yaml:"number"`
	Duration float64 `yaml:"duration"`
}

type UserEntry struct {
	Number   string  `yaml:"number"`
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
}

func Load(r io.Reader) (Scenario, error) {
	var sc Scenario
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return Scenario{}, nil
		}
		return Scenario{}, fmt.Errorf("decoding scenario: %w", err)
	}

	for i, step := range sc.Steps {
		if !step.Op.valid() {
			return Scenario{}, fmt.Errorf("step %d: %w %q", i, ErrUnknownOp, step.Op)
		}
	}

	return sc, nil
}
