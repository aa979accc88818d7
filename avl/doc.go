// Package avl implements a fixed-capacity ordered map as a self-balancing
// AVL tree whose nodes live in a pre-allocated arena.
//
// Nodes never reference each other by pointer. Every link (left child,
// right child, parent, and the tree root) is an Index into the arena's slot
// array, with InvalidIndex standing for "no node". The arena hands slots out
// from a free list in O(1) and never grows, so a tree performs no allocation
// after construction. This is the layout used in embedded code where dynamic
// allocation is unavailable, and it also rules out the aliasing and
// use-after-free hazards of pointer-linked trees.
//
// Memory layout:
// -------------
//
//	 arena cells                         free list
//	 ┌─────┬─────┬─────┬─────┬─────┐     ┌───┬───┐
//	 │ 0   │ 1   │ 2   │ 3   │ 4   │     │ 4 │ 3 │
//	 │ k=5 │ k=2 │ k=8 │ ─── │ ─── │     └───┴───┘
//	 │ L=1 │ L=∅ │ L=∅ │     │     │
//	 │ R=2 │ R=∅ │ R=∅ │     │     │     root = 0
//	 │ P=∅ │ P=0 │ P=0 │     │     │
//	 └─────┴─────┴─────┴─────┴─────┘
//
// The free-list set and the in-use set always partition the capacity; only
// the set is contractual, not the order slots are reused in.
//
// Balancing is classic AVL: after every insertion or removal the tree walks
// from the point of structural change to the root, rotating wherever a
// node's balance factor leaves {-1, 0, 1}. Subtree heights are recomputed
// from scratch at each step rather than cached per node, a deliberate trade
// for small fixed-capacity trees.
//
// Traversals come in three shapes:
//
//   - eager callback sweeps in four fixed orders (LRCAction, RLCAction,
//     CLRAction, LCRAction) plus breadth-first (BFSAction);
//   - lazy resumable index sequences for the in-order and breadth-first
//     orders (LCRSeq, BFSSeq, and the LCRActionS/BFSActionS wrappers),
//     explicit state machines that yield one slot index per pull;
//   - a forward Iterator in key order (Begin/End) using the classic
//     successor walk.
//
// The tree is single-owner: no operation is safe to interleave with an open
// traversal, and no invalidation detection exists. Valid() checks every
// structural invariant (acyclicity, link consistency, BST order, AVL
// balance, reachability, size) and is meant for tests and assertions only.
package avl
