package priority

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/davidvella/xds"
	"github.com/davidvella/xds/identity"
)

// Queue is an indexed min-priority queue. Every entry tracks its slot in
// the heap so that any entry can be removed or rescheduled in O(log n) by
// its identity.
type Queue[T any, ID comparable] struct {
	items    entries[T, ID]
	itemMap  map[ID]*entry[T, ID]
	identify identity.Identifier[T, ID]
	logger   *slog.Logger
}

// NewQueue creates an empty queue that indexes payloads by the identity
// derived by identify.
func NewQueue[T any, ID comparable](identify identity.Identifier[T, ID], opts ...Option) *Queue[T, ID] {
	o := applyOptions(opts)
	return &Queue[T, ID]{
		items:    make(entries[T, ID], 0, o.capacity),
		itemMap:  make(map[ID]*entry[T, ID], o.capacity),
		identify: identify,
		logger:   o.logger,
	}
}

// NewQueueFrom creates a queue holding data, building the heap in O(n).
// It fails if two payloads share an identity or a priority is NaN.
func NewQueueFrom[T any, ID comparable](identify identity.Identifier[T, ID], data []Entry[T], opts ...Option) (*Queue[T, ID], error) {
	o := applyOptions(append([]Option{WithCapacity(len(data))}, opts...))
	items, itemMap, err := build(identify, data, o.capacity)
	if err != nil {
		return nil, err
	}
	return &Queue[T, ID]{
		items:    items,
		itemMap:  itemMap,
		identify: identify,
		logger:   o.logger,
	}, nil
}

// build indexes data and heapifies it.
func build[T any, ID comparable](identify identity.Identifier[T, ID], data []Entry[T], capacity int) (entries[T, ID], map[ID]*entry[T, ID], error) {
	items := make(entries[T, ID], 0, capacity)
	itemMap := make(map[ID]*entry[T, ID], capacity)
	for _, d := range data {
		if math.IsNaN(d.Priority) {
			return nil, nil, ErrInvalidPriority
		}
		id := identify.Identify(d.Payload)
		if _, exists := itemMap[id]; exists {
			return nil, nil, fmt.Errorf("priority: %v: %w", id, xds.ErrDuplicateKey)
		}
		e := &entry[T, ID]{priority: d.Priority, payload: d.Payload, id: id, live: true}
		items = append(items, e)
		itemMap[id] = e
	}
	items.init()
	return items, itemMap, nil
}

// Len returns the number of entries in the queue.
func (pq *Queue[T, ID]) Len() int {
	return len(pq.items)
}

// Contains reports whether an entry with the given identity is queued.
func (pq *Queue[T, ID]) Contains(id ID) bool {
	_, exists := pq.itemMap[id]
	return exists
}

// Get returns the entry with the given identity.
func (pq *Queue[T, ID]) Get(id ID) (Entry[T], bool) {
	e, exists := pq.itemMap[id]
	if !exists {
		return Entry[T]{}, false
	}
	return e.value(), true
}

// Push adds payload at the given priority. It fails without modifying the
// queue if an entry with the same identity is already queued.
func (pq *Queue[T, ID]) Push(priority float64, payload T) error {
	if math.IsNaN(priority) {
		return ErrInvalidPriority
	}
	id := pq.identify.Identify(payload)
	if _, exists := pq.itemMap[id]; exists {
		pq.logger.Debug("rejected duplicate push", "id", id, "priority", priority)
		return fmt.Errorf("priority: push %v: %w", id, xds.ErrDuplicateKey)
	}
	e := &entry[T, ID]{priority: priority, payload: payload, id: id, live: true}
	pq.items.push(e)
	pq.itemMap[id] = e
	return nil
}

// Pop removes and returns the entry with the lowest priority.
func (pq *Queue[T, ID]) Pop() (Entry[T], error) {
	if len(pq.items) == 0 {
		return Entry[T]{}, fmt.Errorf("priority: pop: %w", xds.ErrEmptyContainer)
	}
	e := pq.items.pop()
	delete(pq.itemMap, e.id)
	return e.value(), nil
}

// Peek returns the entry with the lowest priority without removing it.
func (pq *Queue[T, ID]) Peek() (Entry[T], error) {
	if len(pq.items) == 0 {
		return Entry[T]{}, fmt.Errorf("priority: peek: %w", xds.ErrEmptyContainer)
	}
	return pq.items[0].value(), nil
}

// Remove removes the entry with the given identity.
func (pq *Queue[T, ID]) Remove(id ID) error {
	e, exists := pq.itemMap[id]
	if !exists {
		return fmt.Errorf("priority: remove %v: %w", id, xds.ErrNotFound)
	}
	pq.items.remove(e.index)
	delete(pq.itemMap, id)
	return nil
}

// Reschedule changes the priority of the entry with the given identity.
// Both earlier and later priorities are handled.
func (pq *Queue[T, ID]) Reschedule(id ID, priority float64) error {
	if math.IsNaN(priority) {
		return ErrInvalidPriority
	}
	e, exists := pq.itemMap[id]
	if !exists {
		return fmt.Errorf("priority: reschedule %v: %w", id, xds.ErrNotFound)
	}
	e.priority = priority
	pq.items.fix(e.index)
	return nil
}

// Clear removes all entries.
func (pq *Queue[T, ID]) Clear() {
	clear(pq.items)
	pq.items = pq.items[:0]
	clear(pq.itemMap)
}
