// Package random provides a set and a dictionary that, besides O(1)
// amortized insertion, removal and lookup, can return one of their
// elements chosen uniformly at random.
//
// Elements are kept in a dense table with an index from key to table
// position. Removal moves the last row of the table into the freed slot and
// updates that row's index entry, so the table never has gaps and a uniform
// position in the table is a uniform live element.
//
// Each container owns a pseudo-random generator seeded at construction.
// Two containers built with the same seed and subjected to the same
// sequence of calls return the same samples; the generator only advances
// when RandomElem or RandomPair is called.
//
// Basic usage:
//
//	s := random.NewSet[int](123)
//	s.Insert(1)
//	s.Insert(2)
//	s.Erase(1)
//	k, err := s.RandomElem() // 2
//
//	d := random.NewDict[string, int](123)
//	d.Insert("a", 1)
//	d.Set("a", 2)                   // overwrite
//	v, err := d.Get("b")            // xds.ErrNotFound, d is unchanged
//	v = d.GetOrInsertDefault("b")   // 0, "b" is now present
//	key, val, err := d.RandomPair()
//
// Dict deliberately separates the strict lookup, Get, from the lookup that
// inserts a zero value on a miss, GetOrInsertDefault.
//
// Neither container is safe for concurrent use.
package random
