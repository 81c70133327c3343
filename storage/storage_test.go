package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kinds = []Kind{SkipMap, PrefixTree}

func collect[V any](rng Range[string, V]) []string {
	keys := make([]string, 0)
	for rng.Next() {
		k, _ := rng.Value()
		keys = append(keys, k)
	}
	return keys
}

func arrange(kind Kind) Storage[int] {
	stg := New[int](kind)
	for i, k := range []string{"123", "12", "1", "", "1234", "12345", "124", "1244", "2"} {
		stg.Set(k, i)
	}
	return stg
}

func TestRange(t *testing.T) {
	cases := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"", "1", "12", "123", "1234", "12345", "124", "1244", "2"}},
		{"1", []string{"1", "12", "123", "1234", "12345", "124", "1244"}},
		{"11", []string{}},
		{"12", []string{"12", "123", "1234", "12345", "124", "1244"}},
		{"123", []string{"123", "1234", "12345"}},
		{"12345", []string{"12345"}},
		{"123456", []string{}},
		{"2", []string{"2"}},
		{"3", []string{}},
	}

	for _, kind := range kinds {
		stg := arrange(kind)
		for _, c := range cases {
			t.Run(string(kind)+"/"+c.prefix, func(t *testing.T) {
				assert.Equal(t, c.want, collect(stg.Range(c.prefix)))
			})
		}
	}
}

func TestRangeValues(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			// arrange
			stg := arrange(kind)

			// act
			rng := stg.Range("124")
			got := map[string]int{}
			for rng.Next() {
				k, v := rng.Value()
				got[k] = v
			}

			// assert
			assert.Equal(t, map[string]int{"124": 6, "1244": 7}, got)
		})
	}
}

func TestGetSetDel(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			// arrange
			stg := New[string](kind)

			// act
			stg.Set("", "root")
			stg.Set("a", "first")
			stg.Set("a", "second")
			stg.Del("missing")

			// assert
			require.Equal(t, 2, stg.Len())
			v, ok := stg.Get("a")
			assert.True(t, ok)
			assert.Equal(t, "second", v)
			v, ok = stg.Get("")
			assert.True(t, ok)
			assert.Equal(t, "root", v)
			assert.Equal(t, map[string]string{"": "root", "a": "second"}, stg.ToMap())

			stg.Del("a")
			_, ok = stg.Get("a")
			assert.False(t, ok)
			assert.Equal(t, 1, stg.Len())
		})
	}
}

func TestClear(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			stg := arrange(kind)

			stg.Clear()

			assert.Equal(t, 0, stg.Len())
			assert.Empty(t, collect(stg.Range("")))
			_, ok := stg.Get("1")
			assert.False(t, ok)

			stg.Set("9", 9)
			assert.Equal(t, []string{"9"}, collect(stg.Range("")))
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("TRIE")
	assert.NoError(t, err)
	assert.Equal(t, PrefixTree, k)

	k, err = ParseKind("")
	assert.NoError(t, err)
	assert.Equal(t, SkipMap, k)

	_, err = ParseKind("btree")
	assert.Error(t, err)
}

func TestRangeSplitsMultiByteRunes(t *testing.T) {
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			// arrange
			stg := New[int](kind)
			stg.Set("\xc3", 1)
			stg.Set("\xc3\xa9", 2)
			stg.Set("\xc3\xa9t\xc3\xa9", 3)
			stg.Set("\xff", 4)
			stg.Set("a", 5)

			// act & assert
			assert.Equal(t, []string{"\xc3", "\xc3\xa9", "\xc3\xa9t\xc3\xa9"}, collect(stg.Range("\xc3")))
			assert.Equal(t, []string{"\xc3\xa9", "\xc3\xa9t\xc3\xa9"}, collect(stg.Range("\xc3\xa9")))
			assert.Equal(t, []string{"\xc3\xa9t\xc3\xa9"}, collect(stg.Range("\xc3\xa9t\xc3")))
			assert.Equal(t, []string{"\xff"}, collect(stg.Range("\xff")))
			assert.Equal(t, []string{"a", "\xc3", "\xc3\xa9", "\xc3\xa9t\xc3\xa9", "\xff"}, collect(stg.Range("")))
			assert.Equal(t, map[string]int{"\xc3": 1, "\xc3\xa9": 2, "\xc3\xa9t\xc3\xa9": 3, "\xff": 4, "a": 5}, stg.ToMap())
		})
	}
}
