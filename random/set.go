package random

import (
	"fmt"
	"iter"

	"github.com/davidvella/xds"
)

// Set is a set of keys that supports uniform random sampling of its
// elements in addition to O(1) amortized insertion, removal and lookup.
type Set[K comparable] struct {
	t table[K, struct{}]
}

// NewSet creates an empty set whose sampling sequence is determined by
// seed.
func NewSet[K comparable](seed uint32, opts ...Option) *Set[K] {
	return &Set[K]{t: newTable[K, struct{}](seed, applyOptions(opts))}
}

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int {
	return s.t.len()
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.t.contains(key)
}

// Count returns 1 if key is in the set and 0 otherwise.
func (s *Set[K]) Count(key K) int {
	if s.t.contains(key) {
		return 1
	}
	return 0
}

// Insert adds key to the set. It returns false, leaving the set unchanged,
// if key was already present.
func (s *Set[K]) Insert(key K) bool {
	_, inserted := s.t.insert(key, struct{}{})
	return inserted
}

// Erase removes key from the set. It returns false if key was not present.
func (s *Set[K]) Erase(key K) bool {
	return s.t.erase(key)
}

// RandomElem returns an element chosen uniformly at random.
func (s *Set[K]) RandomElem() (K, error) {
	if s.t.len() == 0 {
		var zero K
		return zero, fmt.Errorf("random: set: %w", xds.ErrEmptyContainer)
	}
	return s.t.rows[s.t.sample()].key, nil
}

// Clear removes all elements. The generator state is kept.
func (s *Set[K]) Clear() {
	s.t.clear()
}

// Clone returns an independent copy of the set. The copy's generator
// starts from the current state of s, so both produce the same samples
// when subjected to the same operations.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{t: s.t.clone()}
}

// All returns an iterator over the elements in storage order. The set
// must not be modified during iteration.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.t.all() {
			if !yield(k) {
				return
			}
		}
	}
}
