package storage

import (
	"encoding/hex"
	"slices"
	"strings"

	"github.com/s0rg/trie"
)

// The trie walks keys rune by rune, so a byte prefix that ends inside a
// multi-byte rune would never be found. Keys are stored hex-encoded: every
// byte becomes two ASCII runes and a byte prefix stays a rune prefix.
// The marker gives the empty key a node of its own instead of the root.
const keyMark = "#"

func trieKey(key string) string {
	return keyMark + hex.EncodeToString([]byte(key))
}

func NewPrefixTreeStorage[V any]() *prefixTreeStorage[V] {
	return &prefixTreeStorage[V]{trie.New[V](), 0}
}

type prefixTreeStorage[V any] struct {
	inner *trie.Trie[V]
	len   int
}

func (s *prefixTreeStorage[V]) Get(key string) (V, bool) {
	return s.inner.Find(trieKey(key))
}

func (s *prefixTreeStorage[V]) Set(key string, value V) {
	if _, ok := s.Get(key); !ok {
		s.len++
	}
	s.inner.Add(trieKey(key), value)
}

func (s *prefixTreeStorage[V]) Del(key string) {
	if _, ok := s.Get(key); !ok {
		return
	}
	s.inner.Del(trieKey(key))
	s.len--
}

func (s *prefixTreeStorage[V]) Range(prefix string) Range[string, V] {
	return &sliceRange[V]{s.keys(prefix), 0, s}
}

// keys returns the stored keys starting with prefix, sorted byte-wise.
func (s *prefixTreeStorage[V]) keys(prefix string) []string {
	suggested, _ := s.inner.Suggest(trieKey(prefix))

	seen := make(map[string]struct{}, len(suggested)+1)
	keys := make([]string, 0, len(suggested)+1)
	add := func(stored string) {
		encoded, ok := strings.CutPrefix(stored, keyMark)
		if !ok {
			return
		}
		raw, err := hex.DecodeString(encoded)
		if err != nil {
			panic("prefix tree holds a key that is not hex: " + stored)
		}
		key := string(raw)
		if !strings.HasPrefix(key, prefix) {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	for _, k := range suggested {
		add(k)
	}
	// a key equal to the prefix is a match too
	if _, ok := s.Get(prefix); ok {
		add(trieKey(prefix))
	}

	slices.Sort(keys)
	return keys
}

func (s *prefixTreeStorage[V]) Len() int {
	return s.len
}

func (s *prefixTreeStorage[V]) Clear() {
	s.inner = trie.New[V]()
	s.len = 0
}

func (s *prefixTreeStorage[V]) ToMap() map[string]V {
	out := make(map[string]V, s.len)
	for _, k := range s.keys("") {
		v, _ := s.Get(k)
		out[k] = v
	}

	return out
}
