package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_EmptyTree(t *testing.T) {
	t.Parallel()

	tr := New[int, int](4)

	assert.True(t, tr.Begin().Equal(tr.End()))
}

func TestIterator_AscendingWalk(t *testing.T) {
	t.Parallel()

	tr := New[int, string](16)
	for _, k := range []int{7, 4, 12, 3, 5, 10, 14} {
		_, ok := tr.Add(k, "")
		require.True(t, ok)
	}

	var got []int
	for it := tr.Begin(); !it.Equal(tr.End()); it.Next() {
		got = append(got, it.Key())
	}

	assert.Equal(t, []int{3, 4, 5, 7, 10, 12, 14}, got)
}

func TestIterator_SingleNode(t *testing.T) {
	t.Parallel()

	tr := New[int, int](4)
	idx, ok := tr.Add(9, 90)
	require.True(t, ok)

	it := tr.Begin()
	assert.Equal(t, idx, it.Index())
	assert.Equal(t, 9, it.Key())
	assert.Equal(t, 90, *it.Value())

	it.Next()
	assert.True(t, it.Equal(tr.End()))

	it.Next() // advancing End stays at End
	assert.True(t, it.Equal(tr.End()))
}

func TestIterator_ValueWritable(t *testing.T) {
	t.Parallel()

	tr := New[string, int](8)
	tr.Add("a", 1)
	tr.Add("b", 2)

	for it := tr.Begin(); !it.Equal(tr.End()); it.Next() {
		*it.Value() *= 100
	}

	assert.Equal(t, 100, *tr.Get("a"))
	assert.Equal(t, 200, *tr.Get("b"))
}

func TestIterator_Equal(t *testing.T) {
	t.Parallel()

	tr := New[int, int](8)
	AddKey(tr, 1)
	AddKey(tr, 2)

	a := tr.Begin()
	b := tr.Begin()
	assert.True(t, a.Equal(b))

	b.Next()
	assert.False(t, a.Equal(b))

	a.Next()
	assert.True(t, a.Equal(b))

	// all exhausted iterators compare equal
	a.Next()
	b.Next()
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(tr.End()))
}

func TestIterator_FromInsert(t *testing.T) {
	t.Parallel()

	tr := New[int, string](8)
	tr.Add(1, "one")
	tr.Add(3, "three")

	it, ok := tr.Insert(KV[int, string]{Key: 2, Val: "two"})
	require.True(t, ok)
	assert.Equal(t, 2, it.Key())

	it.Next()
	assert.Equal(t, 3, it.Key())
}
