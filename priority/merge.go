package priority

import (
	"iter"
)

// Merge returns an iterator that merges sequences already in priority
// order, such as the Sorted iterators of several queues, into a single
// sequence in priority order. Each input is pulled lazily, one entry at a
// time.
func Merge[T any](seqs ...iter.Seq[Entry[T]]) iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		if len(seqs) == 0 {
			return
		}
		t := tournament[T]{nodes: make([]node[T], len(seqs)*2)}
		for i, seq := range seqs {
			leaf := i + len(seqs)
			next, stop := iter.Pull(seq)
			//nolint:gocritic // stopped when the merge returns.
			defer stop()
			t.nodes[leaf].next = next
			t.advance(leaf)
		}
		t.init()
		for !t.nodes[0].value.done && yield(t.nodes[0].value.entry) {
			t.advance(t.nodes[0].index)
			t.replay(t.nodes[0].index)
		}
	}
}

// tournament is a loser tree. With M inputs, leaves occupy nodes M..2M-1
// and internal nodes 1..M-1; node N's parent is N/2. Internal nodes hold
// the loser of the game played there and node 0 holds the overall winner.
type tournament[T any] struct {
	nodes []node[T]
}

// contender is the head of an input; done marks an exhausted input, which
// loses every game.
type contender[T any] struct {
	entry Entry[T]
	done  bool
}

func (c contender[T]) beats(o contender[T]) bool {
	if c.done {
		return false
	}
	return o.done || c.entry.Priority < o.entry.Priority
}

type node[T any] struct {
	index int // Leaf that lost here, or the winning leaf for node 0.
	value contender[T]
	next  func() (Entry[T], bool) // Leaves only.
}

// advance loads the next entry of the input at leaf.
func (t *tournament[T]) advance(leaf int) {
	n := &t.nodes[leaf]
	if e, ok := n.next(); ok {
		n.value = contender[T]{entry: e}
		return
	}
	n.value = contender[T]{done: true}
}

func (t *tournament[T]) init() {
	winner := t.play(1)
	t.nodes[0].index = winner
	t.nodes[0].value = t.nodes[winner].value
}

// play returns the winning leaf below pos, recording losers on the way.
func (t *tournament[T]) play(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left, right := t.play(pos*2), t.play(pos*2+1)
	loser, winner := left, right
	if t.nodes[left].value.beats(t.nodes[right].value) {
		loser, winner = right, left
	}
	t.nodes[pos].index = loser
	t.nodes[pos].value = t.nodes[loser].value
	return winner
}

// replay re-runs the games from leaf, the previous winner, up to the root.
func (t *tournament[T]) replay(leaf int) {
	winning := t.nodes[leaf].value
	for n := leaf >> 1; n != 0; n >>= 1 {
		p := &t.nodes[n]
		if p.value.beats(winning) {
			p.index, leaf = leaf, p.index
			p.value, winning = winning, p.value
		}
	}
	t.nodes[0].index = leaf
	t.nodes[0].value = winning
}
