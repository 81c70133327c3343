// Package storage provides string-keyed in-memory storages that can
// enumerate every key sharing a prefix.
package storage

import (
	"fmt"
	"strings"
)

type Storage[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Del(key string)
	// Range iterates over the keys starting with prefix in ascending
	// byte-wise order. The empty prefix matches every key.
	Range(prefix string) Range[string, V]
	Len() int
	Clear()
	ToMap() map[string]V
}

type Range[K comparable, V any] interface {
	Next() bool
	Value() (K, V)
}

// Kind names a storage implementation.
type Kind string

const (
	SkipMap    Kind = "skipmap"
	PrefixTree Kind = "trie"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case SkipMap, PrefixTree:
		return k, nil
	case "":
		return SkipMap, nil
	}

	return "", fmt.Errorf("unknown storage kind %q", s)
}

func New[V any](kind Kind) Storage[V] {
	switch kind {
	case PrefixTree:
		return NewPrefixTreeStorage[V]()
	default:
		return NewSkipMapStorage[V]()
	}
}

// sliceRange iterates over keys collected up front. Values are looked up
// lazily in the storage the keys came from.
type sliceRange[V any] struct {
	keys       []string
	curr       int
	storageRef Storage[V]
}

func (r *sliceRange[V]) Value() (string, V) {
	key := r.keys[r.curr]
	r.curr++

	// SAFETY: keys were read from storageRef right before the range was
	// built and nothing may write to it while ranging
	value, _ := r.storageRef.Get(key)
	return key, value
}

func (r *sliceRange[V]) Next() bool {
	return r.curr < len(r.keys)
}
