package priority

// Entry is a payload together with the priority it is scheduled at.
// Lower priorities are popped first.
type Entry[T any] struct {
	Priority float64
	Payload  T
}

// entry is the heap resident form of an Entry. index is the entry's current
// slot in the heap slice and is kept up to date on every swap; live is only
// cleared by the lazy queue.
type entry[T any, ID comparable] struct {
	priority float64
	payload  T
	id       ID
	index    int
	live     bool
}

func (e *entry[T, ID]) value() Entry[T] {
	return Entry[T]{Priority: e.priority, Payload: e.payload}
}

// entries is a binary min-heap ordered by priority. The children of slot i
// are 2i+1 and 2i+2 and its parent is (i-1)/2.
type entries[T any, ID comparable] []*entry[T, ID]

func (h entries[T, ID]) less(i, j int) bool {
	return h[i].priority < h[j].priority
}

func (h entries[T, ID]) swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// init establishes the heap invariant over the whole slice in O(n).
func (h entries[T, ID]) init() {
	for i, e := range h {
		e.index = i
	}
	n := len(h)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// up sifts the entry at slot j towards the root.
func (h entries[T, ID]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down sifts the entry at slot i0 towards the leaves, considering only the
// first n slots. It reports whether the entry moved.
func (h entries[T, ID]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // right child, only when strictly smaller
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}

// fix restores heap order after the priority of the entry at slot i changed.
func (h entries[T, ID]) fix(i int) {
	if !h.down(i, len(h)) {
		h.up(i)
	}
}

func (h *entries[T, ID]) push(e *entry[T, ID]) {
	e.index = len(*h)
	*h = append(*h, e)
	h.up(e.index)
}

// pop removes and returns the root.
func (h *entries[T, ID]) pop() *entry[T, ID] {
	n := len(*h) - 1
	h.swap(0, n)
	h.down(0, n)
	return h.truncate()
}

// remove removes and returns the entry at slot i. The last entry is moved
// into the freed slot and its position repaired.
func (h *entries[T, ID]) remove(i int) *entry[T, ID] {
	n := len(*h) - 1
	if n != i {
		h.swap(i, n)
		if !h.down(i, n) {
			h.up(i)
		}
	}
	return h.truncate()
}

func (h *entries[T, ID]) truncate() *entry[T, ID] {
	old := *h
	n := len(old) - 1
	e := old[n]
	old[n] = nil
	*h = old[:n]
	e.index = -1
	return e
}
