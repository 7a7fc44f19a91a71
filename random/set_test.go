package random_test

import (
	"testing"

	"github.com/davidvella/xds"
	"github.com/davidvella/xds/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	rs := random.NewSet[int](123)
	_, err := rs.RandomElem()
	assert.ErrorIs(t, err, xds.ErrEmptyContainer)
	assert.Equal(t, 0, rs.Len())

	assert.True(t, rs.Insert(1))
	assert.True(t, rs.Insert(2))
	assert.True(t, rs.Insert(3))
	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, 1, rs.Count(2))
	assert.Equal(t, 0, rs.Count(4))

	assert.False(t, rs.Insert(3))
	assert.Equal(t, 3, rs.Len())

	assert.False(t, rs.Erase(666))
	assert.True(t, rs.Erase(2))
	assert.Equal(t, 0, rs.Count(2))
	assert.False(t, rs.Contains(2))
	assert.ElementsMatch(t, []int{1, 3}, collect(rs))

	for i := 0; i < 100; i++ {
		k, err := rs.RandomElem()
		require.NoError(t, err)
		assert.Contains(t, []int{1, 3}, k)
	}

	rs.Clear()
	assert.Equal(t, 0, rs.Len())
	_, err = rs.RandomElem()
	assert.ErrorIs(t, err, xds.ErrEmptyContainer)
}

func makeSet(seed uint32, size int) *random.Set[int] {
	rs := random.NewSet[int](seed, random.WithCapacity(size))
	for i := 0; i < size; i++ {
		rs.Insert(i)
	}
	return rs
}

func TestSetSeeding(t *testing.T) {
	const total = 50000
	rs1 := makeSet(123, total)
	rs2 := makeSet(123, total)

	for i := 0; i < total; i++ {
		k1, err := rs1.RandomElem()
		require.NoError(t, err)
		k2, err := rs2.RandomElem()
		require.NoError(t, err)
		require.Equal(t, k1, k2)

		k1, err = rs1.RandomElem()
		require.NoError(t, err)
		k2, err = rs2.RandomElem()
		require.NoError(t, err)
		require.True(t, rs1.Erase(k1))
		require.True(t, rs2.Erase(k2))
	}
	assert.Equal(t, 0, rs1.Len())
}

func TestSetDifferentSeeds(t *testing.T) {
	rs1 := makeSet(1, 1000)
	rs2 := makeSet(2, 1000)
	same := 0
	for i := 0; i < 100; i++ {
		k1, _ := rs1.RandomElem()
		k2, _ := rs2.RandomElem()
		if k1 == k2 {
			same++
		}
	}
	assert.Less(t, same, 100)
}

func TestSetClone(t *testing.T) {
	rs := makeSet(7, 100)
	// Advance the generator before cloning.
	_, _ = rs.RandomElem()

	cp := rs.Clone()
	assert.Equal(t, rs.Len(), cp.Len())
	for i := 0; i < 50; i++ {
		k1, err := rs.RandomElem()
		require.NoError(t, err)
		k2, err := cp.RandomElem()
		require.NoError(t, err)
		require.Equal(t, k1, k2)
		rs.Erase(k1)
		cp.Erase(k2)
	}

	// The copies are independent.
	rs.Clear()
	assert.Equal(t, 0, rs.Len())
	assert.Equal(t, 50, cp.Len())
}

func TestSetUniform(t *testing.T) {
	rs := makeSet(42, 4)
	rs.Erase(1)

	counts := map[int]int{}
	const draws = 30000
	for i := 0; i < draws; i++ {
		k, err := rs.RandomElem()
		require.NoError(t, err)
		counts[k]++
	}
	assert.Len(t, counts, 3)
	assert.NotContains(t, counts, 1)
	for k, n := range counts {
		assert.InDelta(t, draws/3, n, draws/20, "element %d", k)
	}
}

func collect(rs *random.Set[int]) []int {
	var out []int
	for k := range rs.All() {
		out = append(out, k)
	}
	return out
}
