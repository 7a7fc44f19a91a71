package priority

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/davidvella/xds"
	"github.com/davidvella/xds/identity"
)

// LazyQueue is an indexed min-priority queue that removes entries lazily.
// Remove only marks an entry as dead; the entry stays in the heap until it
// reaches the root, where Pop or Peek discard it. Removal is therefore O(1)
// with the O(log n) repair deferred, at the cost of not supporting
// rescheduling.
type LazyQueue[T any, ID comparable] struct {
	items    entries[T, ID]
	itemMap  map[ID]*entry[T, ID]
	size     int
	identify identity.Identifier[T, ID]
	logger   *slog.Logger
}

// NewLazyQueue creates an empty lazy queue that indexes payloads by the
// identity derived by identify.
func NewLazyQueue[T any, ID comparable](identify identity.Identifier[T, ID], opts ...Option) *LazyQueue[T, ID] {
	o := applyOptions(opts)
	return &LazyQueue[T, ID]{
		items:    make(entries[T, ID], 0, o.capacity),
		itemMap:  make(map[ID]*entry[T, ID], o.capacity),
		identify: identify,
		logger:   o.logger,
	}
}

// NewLazyQueueFrom creates a lazy queue holding data, building the heap in
// O(n). It fails if two payloads share an identity or a priority is NaN.
func NewLazyQueueFrom[T any, ID comparable](identify identity.Identifier[T, ID], data []Entry[T], opts ...Option) (*LazyQueue[T, ID], error) {
	o := applyOptions(append([]Option{WithCapacity(len(data))}, opts...))
	items, itemMap, err := build(identify, data, o.capacity)
	if err != nil {
		return nil, err
	}
	return &LazyQueue[T, ID]{
		items:    items,
		itemMap:  itemMap,
		size:     len(items),
		identify: identify,
		logger:   o.logger,
	}, nil
}

// Len returns the number of live entries. Tombstones are not counted.
func (lq *LazyQueue[T, ID]) Len() int {
	return lq.size
}

// Tombstones returns the number of removed entries still held in the heap.
func (lq *LazyQueue[T, ID]) Tombstones() int {
	return len(lq.items) - lq.size
}

// Contains reports whether a live entry with the given identity is queued.
func (lq *LazyQueue[T, ID]) Contains(id ID) bool {
	_, exists := lq.itemMap[id]
	return exists
}

// Push adds payload at the given priority. It fails without modifying the
// queue if a live entry with the same identity is already queued. An
// identity whose entry was removed may be pushed again.
func (lq *LazyQueue[T, ID]) Push(priority float64, payload T) error {
	if math.IsNaN(priority) {
		return ErrInvalidPriority
	}
	id := lq.identify.Identify(payload)
	if _, exists := lq.itemMap[id]; exists {
		lq.logger.Debug("rejected duplicate push", "id", id, "priority", priority)
		return fmt.Errorf("priority: push %v: %w", id, xds.ErrDuplicateKey)
	}
	e := &entry[T, ID]{priority: priority, payload: payload, id: id, live: true}
	lq.items.push(e)
	lq.itemMap[id] = e
	lq.size++
	return nil
}

// Pop removes and returns the live entry with the lowest priority,
// discarding any tombstones found at the root on the way.
func (lq *LazyQueue[T, ID]) Pop() (Entry[T], error) {
	if !lq.sweep() {
		return Entry[T]{}, fmt.Errorf("priority: pop: %w", xds.ErrEmptyContainer)
	}
	e := lq.items.pop()
	delete(lq.itemMap, e.id)
	lq.size--
	return e.value(), nil
}

// Peek returns the live entry with the lowest priority without removing
// it. Tombstones found at the root are discarded.
func (lq *LazyQueue[T, ID]) Peek() (Entry[T], error) {
	if !lq.sweep() {
		return Entry[T]{}, fmt.Errorf("priority: peek: %w", xds.ErrEmptyContainer)
	}
	return lq.items[0].value(), nil
}

// sweep discards tombstones until the root is live. It reports whether a
// live entry remains.
func (lq *LazyQueue[T, ID]) sweep() bool {
	if lq.size == 0 {
		// Everything left is dead.
		if n := len(lq.items); n > 0 {
			lq.logger.Debug("released tombstones", "count", n)
			clear(lq.items)
			lq.items = lq.items[:0]
		}
		return false
	}
	discarded := 0
	for !lq.items[0].live {
		lq.items.pop()
		discarded++
	}
	if discarded > 0 {
		lq.logger.Debug("discarded tombstones", "count", discarded, "live", lq.size)
	}
	return true
}

// Remove marks the live entry with the given identity as dead. The entry
// no longer counts towards Len and its identity may be reused immediately.
func (lq *LazyQueue[T, ID]) Remove(id ID) error {
	e, exists := lq.itemMap[id]
	if !exists {
		return fmt.Errorf("priority: remove %v: %w", id, xds.ErrNotFound)
	}
	delete(lq.itemMap, id)
	var zero T
	e.payload = zero
	e.live = false
	lq.size--
	return nil
}

// Compact drops every tombstone and rebuilds the heap in O(n).
func (lq *LazyQueue[T, ID]) Compact() {
	dead := lq.Tombstones()
	if dead == 0 {
		return
	}
	live := lq.items[:0]
	for _, e := range lq.items {
		if e.live {
			live = append(live, e)
		}
	}
	clear(lq.items[len(live):])
	lq.items = live
	lq.items.init()
	lq.logger.Debug("compacted", "tombstones", dead, "live", lq.size)
}

// Clear removes all entries, live or dead.
func (lq *LazyQueue[T, ID]) Clear() {
	clear(lq.items)
	lq.items = lq.items[:0]
	clear(lq.itemMap)
	lq.size = 0
}
