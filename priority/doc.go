// Package priority implements indexed min-priority queues of payloads
// scheduled at a float64 time. Each payload has an identity, derived by an
// identity.Identifier, which is used to find the payload again for removal
// or rescheduling without scanning the queue.
//
// Two variants are provided:
//
//   - Queue tracks the heap slot of every entry. Remove and Reschedule
//     repair the heap immediately in O(log n) by moving the last entry into
//     the freed slot and sifting it down, or up if it did not move.
//   - LazyQueue marks removed entries as tombstones and leaves the heap
//     untouched. Tombstones are discarded when they surface at the root
//     during Pop or Peek, or all at once by Compact. This suits workloads
//     with frequent cancellations and no rescheduling.
//
// Both variants are binary min-heaps: the entry with the lowest priority is
// popped first and ties are broken arbitrarily. An identity may only be
// queued once at a time; pushing a duplicate fails with
// xds.ErrDuplicateKey and leaves the queue unchanged.
//
// Key features:
//   - Generic over the payload type and any comparable identity type
//   - O(log n) push and pop
//   - O(1) peek on Queue, amortized O(1) on LazyQueue
//   - O(1) identity lookups
//   - O(log n) removal and rescheduling of arbitrary entries on Queue
//   - Ordered, non-destructive iteration with Sorted
//   - Merge of several ordered sequences, e.g. per-shard queues, through a
//     loser tree
//
// Basic usage:
//
//	// Create a queue of event names, identified by the name itself
//	pq := priority.NewQueue[string, string](identity.Self[string]{})
//
//	// Schedule events
//	_ = pq.Push(5, "flush")
//	_ = pq.Push(3, "tick")
//	_ = pq.Push(7, "expire")
//
//	// Move an event earlier
//	_ = pq.Reschedule("expire", 1)
//
//	// Cancel an event
//	_ = pq.Remove("tick")
//
//	// Process events in time order
//	for pq.Len() > 0 {
//	    e, _ := pq.Pop()
//	    fmt.Printf("%v: %s\n", e.Priority, e.Payload)
//	}
//
// Neither queue is safe for concurrent use.
package priority
