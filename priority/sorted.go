package priority

import (
	"iter"

	"github.com/google/btree"
)

// slot is an Entry copied out of the heap together with the heap slot it
// was copied from, which breaks ties between equal priorities.
type slot[T any] struct {
	Entry[T]
	index int
}

func lessSlot[T any](a, b slot[T]) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.index < b.index
}

// snapshot copies the live entries of h into a btree ordered by priority.
func snapshot[T any, ID comparable](h entries[T, ID]) *btree.BTreeG[slot[T]] {
	tree := btree.NewG[slot[T]](2, lessSlot[T])
	for i, e := range h {
		if e.live {
			tree.ReplaceOrInsert(slot[T]{Entry: e.value(), index: i})
		}
	}
	return tree
}

func ascend[T any](tree *btree.BTreeG[slot[T]], yield func(Entry[T]) bool) {
	tree.Ascend(func(s slot[T]) bool {
		return yield(s.Entry)
	})
}

// Sorted returns an iterator over the live entries in priority order. The
// snapshot is taken when iteration starts; the queue is not modified and
// may be mutated while iterating.
func (pq *Queue[T, ID]) Sorted() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		ascend(snapshot(pq.items), yield)
	}
}

// Sorted returns an iterator over the live entries in priority order,
// skipping tombstones. The snapshot is taken when iteration starts; the
// queue is not modified and may be mutated while iterating.
func (lq *LazyQueue[T, ID]) Sorted() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		ascend(snapshot(lq.items), yield)
	}
}
