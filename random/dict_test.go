package random_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/davidvella/xds"
	"github.com/davidvella/xds/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict(t *testing.T) {
	rd := random.NewDict[string, int](123)
	_, _, err := rd.RandomPair()
	assert.ErrorIs(t, err, xds.ErrEmptyContainer)

	letters := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for i, l := range letters {
		rd.Set(l, i)
	}
	assert.Equal(t, 1, rd.Count("c"))
	assert.Equal(t, len(letters), rd.Len())

	k, _, err := rd.RandomPair()
	require.NoError(t, err)
	rd.Set(k, 666)
	v, err := rd.Get(k)
	require.NoError(t, err)
	assert.Equal(t, 666, v)

	k, _, err = rd.RandomPair()
	require.NoError(t, err)
	assert.True(t, rd.Erase(k))
	assert.Equal(t, 0, rd.Count(k))
	_, err = rd.Get(k)
	assert.ErrorIs(t, err, xds.ErrNotFound)
	assert.False(t, rd.Contains(k), "Get must not insert")

	rd.Set(k, 777)
	v, err = rd.Get(k)
	require.NoError(t, err)
	assert.Equal(t, 777, v)
}

func TestDictInsertAndEmplace(t *testing.T) {
	rd := random.NewDict[string, []int](1)

	assert.True(t, rd.Insert("a", []int{1}))
	assert.False(t, rd.Insert("a", []int{2}))
	v, err := rd.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, v)

	calls := 0
	newValue := func() []int {
		calls++
		return []int{9}
	}
	assert.True(t, rd.Emplace("b", newValue))
	assert.False(t, rd.Emplace("b", newValue))
	assert.Equal(t, 1, calls, "value constructed only when absent")
	assert.Equal(t, 2, rd.Len())

	require.NoError(t, rd.Update("b", func(v *[]int) {
		*v = append(*v, 10)
	}))
	v, err = rd.Get("b")
	require.NoError(t, err)
	assert.Equal(t, []int{9, 10}, v)
	assert.ErrorIs(t, rd.Update("zzz", func(*[]int) {}), xds.ErrNotFound)
	assert.False(t, rd.Contains("zzz"))
}

func TestDictGetOrInsertDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rd := random.NewDict[int, string](5, random.WithLogger(logger))

	rd.Set(1, "one")
	assert.Equal(t, "one", rd.GetOrInsertDefault(1))
	assert.Equal(t, 1, rd.Len())

	assert.Equal(t, "", rd.GetOrInsertDefault(2))
	assert.Equal(t, 2, rd.Len())
	assert.True(t, rd.Contains(2))
	assert.Contains(t, buf.String(), "inserted default value")
}

func makeDict(seed uint32, size int) *random.Dict[int, int] {
	rd := random.NewDict[int, int](seed)
	for i := 0; i < size; i++ {
		rd.Set(i, i)
	}
	return rd
}

func TestDictSeeding(t *testing.T) {
	const total = 50000
	rd1 := makeDict(123, total)
	rd2 := makeDict(123, total)

	for i := 0; i < total; i++ {
		k1, v1, err := rd1.RandomPair()
		require.NoError(t, err)
		k2, v2, err := rd2.RandomPair()
		require.NoError(t, err)
		require.Equal(t, k1, k2)
		require.Equal(t, v1, v2)
		require.True(t, rd1.Erase(k1))
		require.False(t, rd1.Erase(k1))
		rd2.Erase(k2)
	}
}

func TestDictNeverSamplesErasedKey(t *testing.T) {
	const n = 1000
	rd := makeDict(77, n)
	erased := map[int]bool{}
	for i := 0; i < n-1; i++ {
		// Erase every key except the last one inserted, in scattered order.
		k := i * 997 % (n - 1)
		if erased[k] {
			continue
		}
		require.True(t, rd.Erase(k))
		erased[k] = true

		for j := 0; j < 5; j++ {
			key, val, err := rd.RandomPair()
			require.NoError(t, err)
			require.False(t, erased[key], "sampled erased key %d", key)
			require.Equal(t, key, val)
		}
	}
	assert.Equal(t, n-len(erased), rd.Len())
}

func TestDictClone(t *testing.T) {
	rd := makeDict(3, 10)
	cp := rd.Clone()

	rd.Set(0, 100)
	rd.Erase(1)
	v, err := cp.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.True(t, cp.Contains(1))
	assert.Equal(t, 10, cp.Len())

	got := map[int]int{}
	for k, v := range cp.All() {
		got[k] = v
	}
	assert.Len(t, got, 10)
	for k, v := range got {
		assert.Equal(t, k, v)
	}
}
