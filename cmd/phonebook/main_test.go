package main

import (
	"context"
	"testing"

	"phonebook/scenario"

	"github.com/stretchr/testify/assert"
)

func TestRunScenario(t *testing.T) {
	for _, s := range []string{"skipmap", "trie"} {
		t.Run(s, func(t *testing.T) {
			t.Setenv("PHONEBOOK_STORAGE", s)

			err := run(context.Background(), "", "testdata/calls.yaml")

			assert.NoError(t, err)
		})
	}
}

func TestRunScenarioMismatch(t *testing.T) {
	err := run(context.Background(), "", "testdata/broken.yaml")

	assert.ErrorIs(t, err, scenario.ErrMismatch)
}

func TestRunBadStorage(t *testing.T) {
	t.Setenv("PHONEBOOK_STORAGE", "btree")

	err := run(context.Background(), "", "testdata/calls.yaml")

	assert.Error(t, err)
}
