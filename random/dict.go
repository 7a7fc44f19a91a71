package random

import (
	"fmt"
	"iter"

	"github.com/davidvella/xds"
)

// Dict is a map from keys to values that supports uniform random sampling
// of its key-value pairs in addition to O(1) amortized insertion, removal
// and lookup.
type Dict[K comparable, V any] struct {
	t table[K, V]
}

// NewDict creates an empty dictionary whose sampling sequence is
// determined by seed.
func NewDict[K comparable, V any](seed uint32, opts ...Option) *Dict[K, V] {
	return &Dict[K, V]{t: newTable[K, V](seed, applyOptions(opts))}
}

// Len returns the number of pairs in the dictionary.
func (d *Dict[K, V]) Len() int {
	return d.t.len()
}

// Contains reports whether key is in the dictionary.
func (d *Dict[K, V]) Contains(key K) bool {
	return d.t.contains(key)
}

// Count returns 1 if key is in the dictionary and 0 otherwise.
func (d *Dict[K, V]) Count(key K) int {
	if d.t.contains(key) {
		return 1
	}
	return 0
}

// Insert adds key with value. It returns false, leaving the dictionary
// unchanged, if key was already present.
func (d *Dict[K, V]) Insert(key K, value V) bool {
	_, inserted := d.t.insert(key, value)
	return inserted
}

// Emplace adds key with the value returned by newValue. newValue is only
// called when key is absent. It returns false if key was already present.
func (d *Dict[K, V]) Emplace(key K, newValue func() V) bool {
	if d.t.contains(key) {
		return false
	}
	d.t.insert(key, newValue())
	return true
}

// Set associates value with key, inserting key if needed.
func (d *Dict[K, V]) Set(key K, value V) {
	i, inserted := d.t.insert(key, value)
	if !inserted {
		d.t.rows[i].value = value
	}
}

// Get returns the value associated with key. It returns an error wrapping
// xds.ErrNotFound if key is absent; the dictionary is never modified.
func (d *Dict[K, V]) Get(key K) (V, error) {
	i, exists := d.t.lookup(key)
	if !exists {
		var zero V
		return zero, fmt.Errorf("random: get %v: %w", key, xds.ErrNotFound)
	}
	return d.t.rows[i].value, nil
}

// GetOrInsertDefault returns the value associated with key. If key is
// absent it is inserted with the zero value of V, which is returned.
func (d *Dict[K, V]) GetOrInsertDefault(key K) V {
	var zero V
	i, inserted := d.t.insert(key, zero)
	if inserted {
		d.t.logger.Debug("inserted default value", "key", key)
	}
	return d.t.rows[i].value
}

// Update calls fn with a pointer to the value associated with key so it
// can be modified in place. The pointer must not be retained after fn
// returns. It returns an error wrapping xds.ErrNotFound if key is absent.
func (d *Dict[K, V]) Update(key K, fn func(value *V)) error {
	i, exists := d.t.lookup(key)
	if !exists {
		return fmt.Errorf("random: update %v: %w", key, xds.ErrNotFound)
	}
	fn(&d.t.rows[i].value)
	return nil
}

// Erase removes key and its value. It returns false if key was not
// present.
func (d *Dict[K, V]) Erase(key K) bool {
	return d.t.erase(key)
}

// RandomPair returns a key-value pair chosen uniformly at random.
func (d *Dict[K, V]) RandomPair() (K, V, error) {
	if d.t.len() == 0 {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, fmt.Errorf("random: dict: %w", xds.ErrEmptyContainer)
	}
	r := d.t.rows[d.t.sample()]
	return r.key, r.value, nil
}

// Clear removes all pairs. The generator state is kept.
func (d *Dict[K, V]) Clear() {
	d.t.clear()
}

// Clone returns an independent copy of the dictionary. Values are copied
// with Go assignment. The copy's generator starts from the current state
// of d.
func (d *Dict[K, V]) Clone() *Dict[K, V] {
	return &Dict[K, V]{t: d.t.clone()}
}

// All returns an iterator over the pairs in storage order. The dictionary
// must not be modified during iteration.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return d.t.all()
}
