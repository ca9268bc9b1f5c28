package bst

import (
	"github.com/ericpko/binary-tree/option"
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

// OrderedTree is an unbalanced binary search tree. Every value in the left
// subtree of a node is less than the node's value, and every value in the
// right subtree is greater than or equal to it. Duplicates are kept.
//
// A nil *OrderedTree is an absent subtree and behaves like an empty tree for
// queries. An OrderedTree is not safe for concurrent mutation.
type OrderedTree[T constraints.Ordered] struct {
	root  option.Option[T]
	left  *OrderedTree[T]
	right *OrderedTree[T]
}

// New returns a tree holding just root, or an empty tree if root is None.
func New[T constraints.Ordered](root option.Option[T]) *OrderedTree[T] {
	return &OrderedTree[T]{root: root}
}

func singletonTree[T constraints.Ordered](item T) *OrderedTree[T] {
	return &OrderedTree[T]{root: option.Some(item)}
}

func (t *OrderedTree[T]) IsEmpty() bool {
	return t == nil || t.root.IsNone()
}

// Insert adds item to the tree in place. Items less than a node's value go
// left; everything else, including an equal item, goes right.
func (t *OrderedTree[T]) Insert(item T) {
	root, ok := t.root.Get()
	if !ok {
		// only a whole tree can be empty, never an interior node
		primitive.Assert(t.left == nil && t.right == nil)
		t.root = option.Some(item)
		return
	}
	if item < root {
		t.left = t.left.insert(item)
	} else {
		t.right = t.right.insert(item)
	}
}

// insert is Insert for a possibly absent subtree; it returns the subtree to
// attach in place of t.
func (t *OrderedTree[T]) insert(item T) *OrderedTree[T] {
	if t == nil {
		return singletonTree(item)
	}
	// modify in-place
	t.Insert(item)
	return t
}

// Contains reports whether item is in the tree. It follows a single path from
// the root, so it relies on the ordering invariant that Insert maintains.
func (t *OrderedTree[T]) Contains(item T) bool {
	if t == nil {
		return false
	}
	root, ok := t.root.Get()
	if !ok {
		return false
	}
	if item == root {
		return true
	}
	if item < root {
		return t.left.Contains(item)
	}
	return t.right.Contains(item)
}

// Len returns the number of values in the tree, counting duplicates.
func (t *OrderedTree[T]) Len() uint64 {
	if t.IsEmpty() {
		return 0
	}
	return std.SumAssumeNoOverflow(1, std.SumAssumeNoOverflow(t.left.Len(), t.right.Len()))
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, or 0 for an empty tree.
func (t *OrderedTree[T]) Height() uint64 {
	if t.IsEmpty() {
		return 0
	}
	return std.SumAssumeNoOverflow(1, max(t.left.Height(), t.right.Height()))
}
