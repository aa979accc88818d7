package avl

import (
	"cmp"
	"math/bits"

	"github.com/wbr/go-staticds/staticvec"
)

// Index is a slot handle into the tree arena. It is the only form of node
// reference the tree ever holds.
type Index uint32

// InvalidIndex is the "no node" sentinel: the maximum representable Index.
const InvalidIndex = ^Index(0)

// maxTreeDepth bounds the pending stack of the lazy in-order traversal:
// floor(log2(capacity)) + 1 levels.
func maxTreeDepth(capacity int) int {
	if capacity < 1 {
		return 1
	}
	return bits.Len(uint(capacity))
}

// record is one arena slot: a key/value pair plus child and parent links.
type record[K cmp.Ordered, V any] struct {
	key    K
	value  V
	left   Index
	right  Index
	parent Index
}

// arena owns every record slot. Allocation pops an index off the free list,
// deallocation pushes it back; both are O(1). The free-list set and the
// in-use set always partition [0, capacity): no duplicates, no overlap.
type arena[K cmp.Ordered, V any] struct {
	cells []record[K, V]
	free  *staticvec.Vector[Index]
}

func newArena[K cmp.Ordered, V any](capacity int) *arena[K, V] {
	m := &arena[K, V]{
		cells: make([]record[K, V], capacity),
		free:  staticvec.New[Index](capacity),
	}
	for i := range m.cells {
		m.destroy(Index(i))
	}
	m.reset()
	return m
}

// reset marks every slot free. Slots come back in ascending index order,
// though only the free set itself is contractual.
func (m *arena[K, V]) reset() {
	m.free.Clear()
	for i := len(m.cells); i > 0; i-- {
		m.free.PushBack(Index(i - 1))
	}
}

// allocate pops a free slot, or InvalidIndex when the arena is exhausted.
func (m *arena[K, V]) allocate() Index {
	idx, ok := m.free.PopBack()
	if !ok {
		return InvalidIndex
	}
	return idx
}

// deallocate destroys the slot and returns it to the free list. The index
// must be live; there is no double-free detection at this level.
func (m *arena[K, V]) deallocate(idx Index) {
	m.destroy(idx)
	m.free.PushBack(idx)
}

// destroy zeroes the record so the arena never pins a dead key or value,
// and leaves every link at InvalidIndex.
func (m *arena[K, V]) destroy(idx Index) {
	m.cells[idx] = record[K, V]{left: InvalidIndex, right: InvalidIndex, parent: InvalidIndex}
}

// at returns the slot storage. No bounds check beyond the runtime's:
// indices are engine-internal and always caller-controlled.
func (m *arena[K, V]) at(idx Index) *record[K, V] {
	return &m.cells[idx]
}

func (m *arena[K, V]) isFull() bool { return m.free.Empty() }

func (m *arena[K, V]) capacity() int { return len(m.cells) }

// live is the number of slots currently holding records.
func (m *arena[K, V]) live() int { return len(m.cells) - m.free.Len() }
