package avl

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid_AfterEveryAdd(t *testing.T) {
	t.Parallel()

	const (
		capacity = 256
		seed     = 24680
	)

	var (
		tr   = New[int, int](capacity)
		fake = gofakeit.New(seed)
	)

	for tr.Len() < capacity {
		k := fake.Number(0, 1_000_000)
		if _, ok := AddKey(tr, k); ok {
			require.True(t, tr.Valid(), "invalid after adding %d", k)
		}
	}
}

func TestValid_DetectsCycle(t *testing.T) {
	t.Parallel()

	tr := New[int, int](8)
	for _, k := range []int{2, 1, 3} {
		AddKey(tr, k)
	}
	require.True(t, tr.Valid())

	// point a leaf back at the root
	tr.mem.at(tr.IndexOf(1)).left = tr.root

	assert.False(t, tr.validateNoLoops())
	assert.False(t, tr.Valid())
}

func TestValid_DetectsBrokenParentLink(t *testing.T) {
	t.Parallel()

	tr := New[int, int](8)
	for _, k := range []int{2, 1, 3} {
		AddKey(tr, k)
	}

	// the node claims a parent that does not know it
	tr.mem.at(tr.IndexOf(3)).parent = tr.IndexOf(1)

	assert.False(t, tr.validateRelationships(tr.root))
	assert.False(t, tr.Valid())
}

func TestValid_DetectsOrderViolation(t *testing.T) {
	t.Parallel()

	tr := New[int, int](8)
	for _, k := range []int{2, 1, 3} {
		AddKey(tr, k)
	}

	// left child key jumps above its parent's
	tr.mem.at(tr.IndexOf(1)).key = 5

	assert.False(t, tr.validateRelationships(tr.root))
}

func TestValid_DetectsIsolatedArea(t *testing.T) {
	t.Parallel()

	tr := New[int, int](8)
	for _, k := range []int{2, 1, 3} {
		AddKey(tr, k)
	}

	// a slot with a live link that nothing reaches is a leak
	ghost := tr.mem.allocate()
	tr.mem.at(ghost).parent = tr.root

	assert.False(t, tr.validateNoIsolatedAreas())
	assert.False(t, tr.Valid())
}

func TestValid_DetectsImbalance(t *testing.T) {
	t.Parallel()

	// hand-link a three-node chain, a shape Add would never produce
	tr := New[int, int](4)
	a := tr.mem.allocate()
	b := tr.mem.allocate()
	c := tr.mem.allocate()

	tr.mem.at(a).key = 1
	tr.mem.at(a).right = b
	tr.mem.at(b).key = 2
	tr.mem.at(b).parent = a
	tr.mem.at(b).right = c
	tr.mem.at(c).key = 3
	tr.mem.at(c).parent = b
	tr.root = a

	assert.True(t, tr.validateNoLoops())
	assert.True(t, tr.validateRelationships(tr.root))
	assert.False(t, tr.validateBalanced(tr.root))
	assert.False(t, tr.Valid())
}

func TestValid_DetectsSizeMismatch(t *testing.T) {
	t.Parallel()

	tr := New[int, int](8)
	for _, k := range []int{2, 1, 3} {
		AddKey(tr, k)
	}
	require.True(t, tr.Valid())

	// burn a slot without linking it anywhere: reachable count no longer
	// matches the arena accounting
	tr.mem.allocate()

	assert.False(t, tr.validateSize())
	assert.False(t, tr.Valid())
}

func TestBitset(t *testing.T) {
	t.Parallel()

	b := newBitset(200)

	assert.False(t, b.has(0))
	assert.False(t, b.has(199))

	b.set(0)
	b.set(63)
	b.set(64)
	b.set(199)

	assert.True(t, b.has(0))
	assert.True(t, b.has(63))
	assert.True(t, b.has(64))
	assert.True(t, b.has(199))
	assert.False(t, b.has(1))
	assert.False(t, b.has(65))
	assert.Equal(t, uint64(4), b.count())
}
