package avl

import "github.com/hideo55/go-popcount"

// bitset tracks visited slot indices, one bit per arena cell.
type bitset []uint64

func newBitset(capacity int) bitset { return make(bitset, (capacity+63)>>6) }

func (b bitset) set(idx Index) { b[idx>>6] |= 1 << (idx & 0x3F) }

func (b bitset) has(idx Index) bool { return b[idx>>6]>>(idx&0x3F)&1 == 1 }

func (b bitset) count() uint64 {
	var n uint64
	for _, word := range b {
		n += popcount.Count(word)
	}
	return n
}

// Valid checks every structural invariant: acyclicity, two-way link
// consistency with BST ordering, reachability of all in-use slots, AVL
// balance, and size consistency. It is read-only and meant for tests and
// assertions, never for the hot path.
func (t *Tree[K, V]) Valid() bool {
	return t.validateNoLoops() &&
		t.validateRelationships(t.root) &&
		t.validateNoIsolatedAreas() &&
		t.validateBalanced(t.root) &&
		t.validateSize()
}

// validateNoLoops runs a DFS with an explicit visited set and fails as soon
// as any slot recurs, i.e. a slot turned out to be its own ancestor.
func (t *Tree[K, V]) validateNoLoops() bool {
	if t.root == InvalidIndex {
		return true
	}
	visited := newBitset(t.Cap())
	pending := []Index{t.root}
	for len(pending) > 0 {
		idx := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if visited.has(idx) {
			return false
		}
		visited.set(idx)
		rec := t.mem.at(idx)
		if rec.left != InvalidIndex {
			pending = append(pending, rec.left)
		}
		if rec.right != InvalidIndex {
			pending = append(pending, rec.right)
		}
	}
	return true
}

// validateRelationships checks that a node's parent holds it as a child, and
// that the BST ordering holds recursively: left keys below, right keys above.
func (t *Tree[K, V]) validateRelationships(idx Index) bool {
	if idx == InvalidIndex {
		return true
	}
	rec := t.mem.at(idx)
	if rec.parent != InvalidIndex {
		parent := t.mem.at(rec.parent)
		if parent.left != idx && parent.right != idx {
			return false
		}
	}
	if rec.left != InvalidIndex && t.mem.at(rec.left).key >= rec.key {
		return false
	}
	if rec.right != InvalidIndex && t.mem.at(rec.right).key <= rec.key {
		return false
	}
	return t.validateRelationships(rec.left) && t.validateRelationships(rec.right)
}

// validateNoIsolatedAreas checks that every slot holding any live link, plus
// the root itself, is reachable from the root. Anything else is a structural
// leak.
func (t *Tree[K, V]) validateNoIsolatedAreas() bool {
	visited := newBitset(t.Cap())
	if t.root != InvalidIndex {
		pending := []Index{t.root}
		for len(pending) > 0 {
			idx := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			if visited.has(idx) {
				continue
			}
			visited.set(idx)
			rec := t.mem.at(idx)
			if rec.left != InvalidIndex {
				pending = append(pending, rec.left)
			}
			if rec.right != InvalidIndex {
				pending = append(pending, rec.right)
			}
		}
	}
	for i := 0; i < t.Cap(); i++ {
		idx := Index(i)
		rec := t.mem.at(idx)
		inUse := rec.left != InvalidIndex || rec.right != InvalidIndex ||
			rec.parent != InvalidIndex || idx == t.root
		if inUse && !visited.has(idx) {
			return false
		}
	}
	return true
}

// validateBalanced checks |height(left) - height(right)| <= 1 at every node.
func (t *Tree[K, V]) validateBalanced(idx Index) bool {
	if idx == InvalidIndex {
		return true
	}
	if bf := t.balanceFactor(idx); bf < -1 || bf > 1 {
		return false
	}
	rec := t.mem.at(idx)
	return t.validateBalanced(rec.left) && t.validateBalanced(rec.right)
}

// validateSize compares the number of BFS-reachable nodes with the arena's
// live-slot count (capacity minus free-list length).
func (t *Tree[K, V]) validateSize() bool {
	visited := newBitset(t.Cap())
	seq := t.BFSSeq()
	for idx, ok := seq.Next(); ok; idx, ok = seq.Next() {
		visited.set(idx)
	}
	return visited.count() == uint64(t.Len())
}
