// Package xds provides generic containers used as building blocks for
// event-driven and simulation systems.
//
// The containers live in sub-packages:
//
//   - priority: an indexed min-priority queue keyed by a float64 time, in an
//     eager variant (Queue) supporting O(log n) removal and rescheduling of
//     arbitrary entries, and a lazy variant (LazyQueue) that tombstones
//     removed entries and discards them when they surface.
//   - random: a set and a dictionary with O(1) amortized insert, erase and
//     lookup that can also sample a live element uniformly at random from a
//     seeded, reproducible generator.
//   - identity: strategies mapping a stored payload to the identity used to
//     index it.
//
// Every container is single-owner and not safe for concurrent use. All
// failures are reported as errors wrapping one of the sentinels declared
// in this package, so callers can test for them with errors.Is. A failed
// operation never leaves a container partially modified.
package xds
