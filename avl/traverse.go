package avl

import (
	"cmp"

	"github.com/wbr/go-staticds/staticvec"
)

// Visitor is called once per node during a traversal. The value is handed
// over by pointer so a visitor may update it in place; keys are never
// mutable. There is no early-termination support.
type Visitor[K cmp.Ordered, V any] func(key K, value *V)

// LRCAction visits the left subtree, then the right subtree, then the node
// itself, for every node.
func (t *Tree[K, V]) LRCAction(action Visitor[K, V]) { t.lrcWalk(t.root, action) }

func (t *Tree[K, V]) lrcWalk(idx Index, action Visitor[K, V]) {
	if idx == InvalidIndex {
		return
	}
	rec := t.mem.at(idx)
	t.lrcWalk(rec.left, action)
	t.lrcWalk(rec.right, action)
	action(rec.key, &rec.value)
}

// RLCAction visits the right subtree, then the left subtree, then the node.
func (t *Tree[K, V]) RLCAction(action Visitor[K, V]) { t.rlcWalk(t.root, action) }

func (t *Tree[K, V]) rlcWalk(idx Index, action Visitor[K, V]) {
	if idx == InvalidIndex {
		return
	}
	rec := t.mem.at(idx)
	t.rlcWalk(rec.right, action)
	t.rlcWalk(rec.left, action)
	action(rec.key, &rec.value)
}

// CLRAction visits the node first, then the left subtree, then the right
// (pre-order).
func (t *Tree[K, V]) CLRAction(action Visitor[K, V]) { t.clrWalk(t.root, action) }

func (t *Tree[K, V]) clrWalk(idx Index, action Visitor[K, V]) {
	if idx == InvalidIndex {
		return
	}
	rec := t.mem.at(idx)
	action(rec.key, &rec.value)
	t.clrWalk(rec.left, action)
	t.clrWalk(rec.right, action)
}

// LCRAction visits the left subtree, then the node, then the right subtree
// (in-order): keys arrive in ascending order.
func (t *Tree[K, V]) LCRAction(action Visitor[K, V]) { t.lcrWalk(t.root, action) }

func (t *Tree[K, V]) lcrWalk(idx Index, action Visitor[K, V]) {
	if idx == InvalidIndex {
		return
	}
	rec := t.mem.at(idx)
	t.lcrWalk(rec.left, action)
	action(rec.key, &rec.value)
	t.lcrWalk(rec.right, action)
}

// BFSAction visits every node level by level, children after parents.
func (t *Tree[K, V]) BFSAction(action Visitor[K, V]) {
	if t.root == InvalidIndex {
		return
	}
	queue := make([]Index, 0, t.Len())
	queue = append(queue, t.root)
	for head := 0; head < len(queue); head++ {
		rec := t.mem.at(queue[head])
		action(rec.key, &rec.value)
		if rec.left != InvalidIndex {
			queue = append(queue, rec.left)
		}
		if rec.right != InvalidIndex {
			queue = append(queue, rec.right)
		}
	}
}

// Seq is a lazily produced sequence of slot indices: finite, single-pass and
// not restartable. The producer suspends exactly at each yielded index and
// resumes on the next pull; abandoning a sequence mid-walk is always safe
// and leaves the tree untouched. The tree must not be mutated while a
// sequence is open.
type Seq interface {
	// Next yields the next slot index. ok is false once the sequence is
	// exhausted, and stays false.
	Next() (Index, bool)
}

// LCRSeq returns the in-order index sequence. Its pending stack is bounded
// by the maximum possible tree depth, floor(log2(capacity))+1.
func (t *Tree[K, V]) LCRSeq() Seq {
	return &lcrSeq[K, V]{
		tree:    t,
		pending: staticvec.New[Index](maxTreeDepth(t.Cap())),
		cursor:  t.root,
	}
}

type lcrSeq[K cmp.Ordered, V any] struct {
	tree    *Tree[K, V]
	pending *staticvec.Vector[Index]
	cursor  Index
}

func (s *lcrSeq[K, V]) Next() (Index, bool) {
	for s.cursor != InvalidIndex || !s.pending.Empty() {
		for s.cursor != InvalidIndex {
			s.pending.PushBack(s.cursor)
			s.cursor = s.tree.mem.at(s.cursor).left
		}
		idx, ok := s.pending.PopBack()
		if !ok {
			break
		}
		s.cursor = s.tree.mem.at(idx).right
		return idx, true
	}
	return InvalidIndex, false
}

// BFSSeq returns the breadth-first index sequence.
func (t *Tree[K, V]) BFSSeq() Seq {
	s := &bfsSeq[K, V]{tree: t}
	if t.root != InvalidIndex {
		// every node is enqueued exactly once, so Len slots suffice
		s.pending = make([]Index, 0, t.Len())
		s.pending = append(s.pending, t.root)
	}
	return s
}

type bfsSeq[K cmp.Ordered, V any] struct {
	tree    *Tree[K, V]
	pending []Index
	head    int
}

func (s *bfsSeq[K, V]) Next() (Index, bool) {
	if s.head == len(s.pending) {
		return InvalidIndex, false
	}
	idx := s.pending[s.head]
	s.head++

	rec := s.tree.mem.at(idx)
	if rec.left != InvalidIndex {
		s.pending = append(s.pending, rec.left)
	}
	if rec.right != InvalidIndex {
		s.pending = append(s.pending, rec.right)
	}
	return idx, true
}

// LCRActionS visits nodes in key order, driven by the lazy LCRSeq cursor
// instead of recursion.
func (t *Tree[K, V]) LCRActionS(action Visitor[K, V]) {
	seq := t.LCRSeq()
	for idx, ok := seq.Next(); ok; idx, ok = seq.Next() {
		rec := t.mem.at(idx)
		action(rec.key, &rec.value)
	}
}

// BFSActionS visits nodes level by level, driven by the lazy BFSSeq cursor.
func (t *Tree[K, V]) BFSActionS(action Visitor[K, V]) {
	seq := t.BFSSeq()
	for idx, ok := seq.Next(); ok; idx, ok = seq.Next() {
		rec := t.mem.at(idx)
		action(rec.key, &rec.value)
	}
}
