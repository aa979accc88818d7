package avl

import "cmp"

// Iterator walks the tree in key (LCR) order. Obtain one from Begin, End or
// Insert; the zero Iterator is not usable. Mutating the tree invalidates
// every open iterator with no detection.
type Iterator[K cmp.Ordered, V any] struct {
	tree *Tree[K, V]
	idx  Index
}

// Begin returns an iterator at the smallest key, equal to End() when the
// tree is empty.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{tree: t, idx: t.leftmost(t.root)}
}

// End returns the past-the-end iterator.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: t, idx: InvalidIndex}
}

func (t *Tree[K, V]) leftmost(idx Index) Index {
	if idx == InvalidIndex {
		return InvalidIndex
	}
	for t.mem.at(idx).left != InvalidIndex {
		idx = t.mem.at(idx).left
	}
	return idx
}

// Key returns the key under the iterator, which must not be End().
func (it Iterator[K, V]) Key() K { return it.tree.mem.at(it.idx).key }

// Value returns the value under the iterator, writable in place.
func (it Iterator[K, V]) Value() *V { return &it.tree.mem.at(it.idx).value }

// Index returns the slot index under the iterator (InvalidIndex for End).
func (it Iterator[K, V]) Index() Index { return it.idx }

// Equal reports whether two iterators address the same slot; all exhausted
// iterators compare equal.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool { return it.idx == other.idx }

// Next advances to the in-order successor: the leftmost node of the right
// subtree when there is one, otherwise the nearest ancestor whose left
// subtree holds the current node. O(height) per step, amortized O(1) over a
// full pass. Advancing End() stays at End().
func (it *Iterator[K, V]) Next() {
	if it.idx == InvalidIndex {
		return
	}
	rec := it.tree.mem.at(it.idx)
	if rec.right != InvalidIndex {
		it.idx = it.tree.leftmost(rec.right)
		return
	}
	child, parent := it.idx, rec.parent
	for parent != InvalidIndex && it.tree.mem.at(parent).right == child {
		child, parent = parent, it.tree.mem.at(parent).parent
	}
	it.idx = parent
}
