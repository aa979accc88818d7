package avl

import (
	"cmp"
	"fmt"
)

// KV is a key/value pair, the unit accepted by Insert.
type KV[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

// Tree is a fixed-capacity ordered map backed by an index-addressed arena.
// See the package documentation for the memory model and the traversal and
// validation layers.
type Tree[K cmp.Ordered, V any] struct {
	mem  *arena[K, V]
	root Index
}

// New returns an empty tree able to hold up to capacity keys. The capacity
// is fixed for the tree's whole lifetime.
func New[K cmp.Ordered, V any](capacity int) *Tree[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Tree[K, V]{
		mem:  newArena[K, V](capacity),
		root: InvalidIndex,
	}
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int { return t.mem.live() }

func (t *Tree[K, V]) Empty() bool { return t.root == InvalidIndex }

// Cap returns the fixed arena capacity.
func (t *Tree[K, V]) Cap() int { return t.mem.capacity() }

// height of the subtree rooted at idx, recomputed from scratch on every
// call; height(InvalidIndex) is -1 by convention.
func (t *Tree[K, V]) height(idx Index) int {
	if idx == InvalidIndex {
		return -1
	}
	rec := t.mem.at(idx)
	lh := t.height(rec.left)
	rh := t.height(rec.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

// balanceFactor is height(left) - height(right); AVL keeps it in {-1,0,1}.
func (t *Tree[K, V]) balanceFactor(idx Index) int {
	if idx == InvalidIndex {
		return 0
	}
	rec := t.mem.at(idx)
	return t.height(rec.left) - t.height(rec.right)
}

// rotateRight rotates the subtree around pivot x to the right and returns
// the new subtree root. Only links move, never keys or values. The pivot's
// original parent link is redirected here as well; the caller still owns the
// root index when x was the root.
func (t *Tree[K, V]) rotateRight(x Index) Index {
	y := t.mem.at(x).left
	inner := t.mem.at(y).right
	parent := t.mem.at(x).parent

	if parent != InvalidIndex {
		p := t.mem.at(parent)
		if p.left == x {
			p.left = y
		} else {
			p.right = y
		}
	}

	t.mem.at(y).right = x
	t.mem.at(y).parent = parent
	t.mem.at(x).left = inner
	t.mem.at(x).parent = y
	if inner != InvalidIndex {
		t.mem.at(inner).parent = x
	}
	return y
}

// rotateLeft is the mirror of rotateRight.
func (t *Tree[K, V]) rotateLeft(x Index) Index {
	y := t.mem.at(x).right
	inner := t.mem.at(y).left
	parent := t.mem.at(x).parent

	if parent != InvalidIndex {
		p := t.mem.at(parent)
		if p.left == x {
			p.left = y
		} else {
			p.right = y
		}
	}

	t.mem.at(y).left = x
	t.mem.at(y).parent = parent
	t.mem.at(x).right = inner
	t.mem.at(x).parent = y
	if inner != InvalidIndex {
		t.mem.at(inner).parent = x
	}
	return y
}

// rebalance fixes the balance at idx with at most two rotations and returns
// the index that ends up in idx's place.
func (t *Tree[K, V]) rebalance(idx Index) Index {
	balance := t.balanceFactor(idx)
	rec := t.mem.at(idx)

	if balance > 1 {
		if t.balanceFactor(rec.left) < 0 {
			// left-right case: straighten the left child first
			rec.left = t.rotateLeft(rec.left)
		}
		return t.rotateRight(idx)
	}
	if balance < -1 {
		if t.balanceFactor(rec.right) > 0 {
			// right-left case
			rec.right = t.rotateRight(rec.right)
		}
		return t.rotateLeft(idx)
	}
	return idx
}

// create constructs a record in a fresh slot.
func (t *Tree[K, V]) create(key K, value V, parent Index) Index {
	idx := t.mem.allocate()
	rec := t.mem.at(idx)
	rec.key = key
	rec.value = value
	rec.left = InvalidIndex
	rec.right = InvalidIndex
	rec.parent = parent
	return idx
}

// newNode hangs a new leaf off the BST walk for key. It fails, mutating
// nothing, when the key already exists or the arena is full.
func (t *Tree[K, V]) newNode(key K, value V) (Index, bool) {
	if t.mem.isFull() {
		return InvalidIndex, false
	}
	if t.root == InvalidIndex {
		t.root = t.create(key, value, InvalidIndex)
		return t.root, true
	}

	it := t.root
	for {
		parent := t.mem.at(it)
		switch {
		case parent.key < key:
			if parent.right == InvalidIndex {
				parent.right = t.create(key, value, it)
				return parent.right, true
			}
			it = parent.right
		case parent.key > key:
			if parent.left == InvalidIndex {
				parent.left = t.create(key, value, it)
				return parent.left, true
			}
			it = parent.left
		default:
			return InvalidIndex, false // duplicate key
		}
	}
}

// Add inserts a key/value pair, returning the slot index of the new node.
// It fails without mutating the tree when the key is already present or the
// arena is full.
func (t *Tree[K, V]) Add(key K, value V) (Index, bool) {
	idx, ok := t.newNode(key, value)
	if !ok {
		return InvalidIndex, false
	}

	// walk from the new leaf to the root, rebalancing every ancestor
	cur := idx
	for cur != InvalidIndex && t.mem.at(cur).parent != InvalidIndex {
		parent := t.mem.at(cur).parent
		if parent == t.root {
			t.root = t.rebalance(t.root)
			break
		}
		cur = t.rebalance(parent)
	}
	return idx, true
}

// AddKey inserts key as both key and value, for trees where K == V.
func AddKey[K cmp.Ordered](t *Tree[K, K], key K) (Index, bool) {
	return t.Add(key, key)
}

// Insert adds item and returns an iterator at its node. When the key is
// already present the iterator addresses the existing node and the boolean
// is false; when the tree is full it returns End() and false.
func (t *Tree[K, V]) Insert(item KV[K, V]) (Iterator[K, V], bool) {
	idx, ok := t.Add(item.Key, item.Val)
	if !ok {
		if existing := t.IndexOf(item.Key); existing != InvalidIndex {
			return Iterator[K, V]{tree: t, idx: existing}, false
		}
		return t.End(), false
	}
	return Iterator[K, V]{tree: t, idx: idx}, true
}

// IndexOf returns the slot index holding key, or InvalidIndex. O(height).
func (t *Tree[K, V]) IndexOf(key K) Index {
	idx := t.root
	for idx != InvalidIndex {
		rec := t.mem.at(idx)
		switch {
		case rec.key < key:
			idx = rec.right
		case rec.key > key:
			idx = rec.left
		default:
			return idx
		}
	}
	return InvalidIndex
}

// At returns a pointer to the value stored under key, writable in place,
// or false when the key is absent.
func (t *Tree[K, V]) At(key K) (*V, bool) {
	idx := t.IndexOf(key)
	if idx == InvalidIndex {
		return nil, false
	}
	return &t.mem.at(idx).value, true
}

// Get returns the value stored under key without a presence check. The key
// must be in the tree; calling Get with an absent key is a precondition
// violation, exactly like indexing an unchecked container.
func (t *Tree[K, V]) Get(key K) *V {
	return &t.mem.at(t.IndexOf(key)).value
}

// Remove deletes key from the tree, returning false and leaving the tree
// untouched when the key is absent. The record is destroyed, its slot goes
// back to the arena, and the tree rebalances upward from the point of
// structural change.
func (t *Tree[K, V]) Remove(key K) bool {
	idx := t.IndexOf(key)
	if idx == InvalidIndex {
		return false
	}

	rec := t.mem.at(idx)
	parent := rec.parent
	rebalanceFrom := InvalidIndex

	switch {
	case rec.left == InvalidIndex:
		// splice the right child (or nothing) into idx's place
		t.relink(parent, idx, rec.right)
		if rec.right != InvalidIndex {
			t.mem.at(rec.right).parent = parent
		}
		rebalanceFrom = parent
	case rec.right == InvalidIndex:
		t.relink(parent, idx, rec.left)
		t.mem.at(rec.left).parent = parent
		rebalanceFrom = parent
	default:
		// two children: relink the in-order successor into idx's place
		succ := rec.right
		for t.mem.at(succ).left != InvalidIndex {
			succ = t.mem.at(succ).left
		}
		succRec := t.mem.at(succ)
		succParent := succRec.parent

		t.relink(parent, idx, succ)
		if succParent != idx {
			// successor sits deeper in the right subtree: detach it,
			// then adopt both of idx's subtrees
			t.mem.at(succParent).left = succRec.right
			if succRec.right != InvalidIndex {
				t.mem.at(succRec.right).parent = succParent
			}
			succRec.right = rec.right
			t.mem.at(rec.right).parent = succ
			rebalanceFrom = succParent
		} else {
			// successor is idx's direct right child and keeps its own
			// right subtree
			rebalanceFrom = succ
		}
		succRec.left = rec.left
		t.mem.at(rec.left).parent = succ
		succRec.parent = parent
	}

	t.mem.deallocate(idx)

	if rebalanceFrom == InvalidIndex {
		if t.root != InvalidIndex {
			t.root = t.rebalance(t.root)
		}
		return true
	}
	for cur := rebalanceFrom; cur != InvalidIndex; {
		if cur == t.root {
			t.root = t.rebalance(cur)
			break
		}
		cur = t.rebalance(cur)
		cur = t.mem.at(cur).parent
	}
	return true
}

// relink points parent's child link (or the root when parent is invalid)
// from old to repl.
func (t *Tree[K, V]) relink(parent, old, repl Index) {
	if parent == InvalidIndex {
		t.root = repl
		return
	}
	p := t.mem.at(parent)
	if p.left == old {
		p.left = repl
	} else {
		p.right = repl
	}
}

// Clear destroys every record via a breadth-first sweep and returns the
// arena to its initial state. Capacity is unchanged.
func (t *Tree[K, V]) Clear() {
	if t.root != InvalidIndex {
		queue := make([]Index, 0, t.Len())
		queue = append(queue, t.root)
		for head := 0; head < len(queue); head++ {
			idx := queue[head]
			rec := t.mem.at(idx)
			if rec.left != InvalidIndex {
				queue = append(queue, rec.left)
			}
			if rec.right != InvalidIndex {
				queue = append(queue, rec.right)
			}
			t.mem.destroy(idx)
		}
	}
	t.mem.reset()
	t.root = InvalidIndex
}

// DebugDump prints the tree structure to stdout.
func (t *Tree[K, V]) DebugDump() {
	t.debugDump(t.root, "T:", "")
}

func (t *Tree[K, V]) debugDump(idx Index, tag, indent string) {
	if idx == InvalidIndex {
		return
	}
	rec := t.mem.at(idx)
	fmt.Printf("%s%s [%d] key=%v val=%v bf=%+d\n", indent, tag, idx, rec.key, rec.value, t.balanceFactor(idx))
	t.debugDump(rec.left, "L:", indent+"  ")
	t.debugDump(rec.right, "R:", indent+"  ")
}
