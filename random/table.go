package random

import (
	"iter"
	"log/slog"
	"maps"
	"math/rand/v2"
)

// row is a key and its value as stored in the dense table.
type row[K comparable, V any] struct {
	key   K
	value V
}

// table is a dense slice of rows plus an index from key to row position.
// For every live key k, index[k] == i iff rows[i].key == k, and the rows
// have no gaps, so a uniform index into rows is a uniform live element.
type table[K comparable, V any] struct {
	rows   []row[K, V]
	index  map[K]int
	src    *rand.PCG
	rng    *rand.Rand
	logger *slog.Logger
}

func newTable[K comparable, V any](seed uint32, o options) table[K, V] {
	src := rand.NewPCG(uint64(seed), uint64(seed))
	return table[K, V]{
		rows:   make([]row[K, V], 0, o.capacity),
		index:  make(map[K]int, o.capacity),
		src:    src,
		rng:    rand.New(src),
		logger: o.logger,
	}
}

// clone returns an independent copy of t whose generator continues from
// the same state.
func (t *table[K, V]) clone() table[K, V] {
	src := *t.src
	return table[K, V]{
		rows:   append(make([]row[K, V], 0, cap(t.rows)), t.rows...),
		index:  maps.Clone(t.index),
		src:    &src,
		rng:    rand.New(&src),
		logger: t.logger,
	}
}

func (t *table[K, V]) len() int {
	return len(t.rows)
}

func (t *table[K, V]) contains(key K) bool {
	_, exists := t.index[key]
	return exists
}

// lookup returns the position of key in rows.
func (t *table[K, V]) lookup(key K) (int, bool) {
	i, exists := t.index[key]
	return i, exists
}

// insert appends key and value unless key is present. It returns the row
// position of key and whether an insertion happened.
func (t *table[K, V]) insert(key K, value V) (int, bool) {
	if i, exists := t.index[key]; exists {
		return i, false
	}
	i := len(t.rows)
	t.rows = append(t.rows, row[K, V]{key: key, value: value})
	t.index[key] = i
	return i, true
}

// erase removes key by moving the last row into its slot.
func (t *table[K, V]) erase(key K) bool {
	i, exists := t.index[key]
	if !exists {
		return false
	}
	delete(t.index, key)
	last := len(t.rows) - 1
	if i != last {
		t.rows[i] = t.rows[last]
		t.index[t.rows[i].key] = i
	}
	t.rows[last] = row[K, V]{}
	t.rows = t.rows[:last]
	return true
}

// sample returns a uniformly chosen row position. The table must not be
// empty.
func (t *table[K, V]) sample() int {
	return t.rng.IntN(len(t.rows))
}

func (t *table[K, V]) clear() {
	if n := len(t.rows); n > 0 {
		t.logger.Debug("cleared", "count", n)
	}
	clear(t.rows)
	t.rows = t.rows[:0]
	clear(t.index)
}

func (t *table[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, r := range t.rows {
			if !yield(r.key, r.value) {
				return
			}
		}
	}
}
