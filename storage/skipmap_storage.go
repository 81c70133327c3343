package storage

import (
	"strings"

	"github.com/zhangyunhao116/skipmap"
)

// NewSkipMapStorage returns a storage kept in key order by a skip list.
// A prefix range is a forward scan that stops at the first key past the
// prefix group, since sorted keys sharing a prefix are contiguous.
// skipmap has no seek, so the scan walks every key below the prefix first;
// a range costs O(n) in the worst case. The trie backend does not.
func NewSkipMapStorage[V any]() *skipMapStorage[V] {
	return &skipMapStorage[V]{skipmap.NewString[V]()}
}

type skipMapStorage[V any] struct {
	inner *skipmap.StringMap[V]
}

func (s *skipMapStorage[V]) Get(key string) (V, bool) {
	return s.inner.Load(key)
}

func (s *skipMapStorage[V]) Set(key string, value V) {
	s.inner.Store(key, value)
}

func (s *skipMapStorage[V]) Del(key string) {
	s.inner.Delete(key)
}

func (s *skipMapStorage[V]) Range(prefix string) Range[string, V] {
	keys := make([]string, 0)
	s.inner.Range(func(key string, _ V) bool {
		if key < prefix {
			return true
		}
		if !strings.HasPrefix(key, prefix) {
			return false
		}

		keys = append(keys, key)
		return true
	})

	return &sliceRange[V]{keys, 0, s}
}

func (s *skipMapStorage[V]) Len() int {
	return s.inner.Len()
}

func (s *skipMapStorage[V]) Clear() {
	s.inner = skipmap.NewString[V]()
}

func (s *skipMapStorage[V]) ToMap() map[string]V {
	out := make(map[string]V, s.inner.Len())
	s.inner.Range(func(key string, value V) bool {
		out[key] = value
		return true
	})
	return out
}
