package avl

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_InitialFreeSet(t *testing.T) {
	t.Parallel()

	m := newArena[int, int](8)

	require.Equal(t, 8, m.capacity())
	assert.False(t, m.isFull())
	assert.Equal(t, 0, m.live())

	seen := map[Index]bool{}
	for i := 0; i < 8; i++ {
		idx := m.allocate()
		require.NotEqual(t, InvalidIndex, idx)
		require.Less(t, int(idx), 8)
		require.False(t, seen[idx], "slot %d allocated twice", idx)
		seen[idx] = true
	}

	assert.True(t, m.isFull())
	assert.Equal(t, 8, m.live())
	assert.Equal(t, InvalidIndex, m.allocate())
}

func TestArena_DeallocateReturnsSlot(t *testing.T) {
	t.Parallel()

	m := newArena[int, int](2)

	a := m.allocate()
	b := m.allocate()
	require.True(t, m.isFull())

	m.deallocate(a)
	assert.False(t, m.isFull())
	assert.Equal(t, 1, m.live())

	c := m.allocate()
	assert.Equal(t, a, c)
	assert.NotEqual(t, b, c)
	assert.True(t, m.isFull())
}

func TestArena_DestroyedSlotHasNoLinks(t *testing.T) {
	t.Parallel()

	m := newArena[int, string](4)

	idx := m.allocate()
	rec := m.at(idx)
	rec.key = 7
	rec.value = "seven"
	rec.left = 1
	rec.right = 2
	rec.parent = 3

	m.deallocate(idx)

	rec = m.at(idx)
	assert.Equal(t, 0, rec.key)
	assert.Equal(t, "", rec.value)
	assert.Equal(t, InvalidIndex, rec.left)
	assert.Equal(t, InvalidIndex, rec.right)
	assert.Equal(t, InvalidIndex, rec.parent)
}

// allocate must never hand out a live slot, and must fail exactly when the
// number of outstanding allocations equals the capacity.
func TestArena_AllocateNeverReturnsLive(t *testing.T) {
	t.Parallel()

	const (
		capacity = 64
		ops      = 4000
		seed     = 42
	)

	var (
		m    = newArena[int, int](capacity)
		live = map[Index]bool{}
		fake = gofakeit.New(seed)
	)

	for i := 0; i < ops; i++ {
		if fake.Bool() {
			idx := m.allocate()
			if len(live) == capacity {
				require.Equal(t, InvalidIndex, idx)
				continue
			}
			require.NotEqual(t, InvalidIndex, idx)
			require.False(t, live[idx], "live slot %d handed out again", idx)
			live[idx] = true
		} else if len(live) > 0 {
			var idx Index
			for k := range live {
				idx = k
				break
			}
			m.deallocate(idx)
			delete(live, idx)
		}

		require.Equal(t, len(live), m.live())
		require.Equal(t, len(live) == capacity, m.isFull())
	}
}

func TestArena_Reset(t *testing.T) {
	t.Parallel()

	m := newArena[int, int](4)
	for i := 0; i < 4; i++ {
		m.allocate()
	}
	require.True(t, m.isFull())

	m.reset()

	assert.Equal(t, 0, m.live())
	for i := 0; i < 4; i++ {
		require.NotEqual(t, InvalidIndex, m.allocate())
	}
	assert.True(t, m.isFull())
}

func TestMaxTreeDepth(t *testing.T) {
	t.Parallel()

	for _, tcase := range []struct {
		Capacity int
		Depth    int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{16, 5},
		{512, 10},
		{610, 10},
		{1024, 11},
	} {
		assert.Equal(t, tcase.Depth, maxTreeDepth(tcase.Capacity), "capacity %d", tcase.Capacity)
	}
}
