package plaintree

import (
	"github.com/ericpko/binary-tree/option"
	"github.com/goose-lang/std"
)

// PlainTree is a binary tree with no ordering between its values. Trees are
// built bottom-up with New and never change afterwards, so a PlainTree may be
// read from multiple goroutines.
//
// A nil *PlainTree is an absent subtree.
type PlainTree[T comparable] struct {
	elem  option.Option[T]
	left  *PlainTree[T]
	right *PlainTree[T]
}

// New builds a node from elem and two already-built subtrees, either of which
// may be nil.
func New[T comparable](elem option.Option[T], left *PlainTree[T], right *PlainTree[T]) *PlainTree[T] {
	return &PlainTree[T]{elem: elem, left: left, right: right}
}

func (t *PlainTree[T]) IsEmpty() bool {
	return t == nil || t.elem.IsNone()
}

// Contains searches the whole tree for item, visiting both subtrees of every
// node that does not match.
//
// A node with an empty elem is treated as an empty tree: its children are not
// searched.
func (t *PlainTree[T]) Contains(item T) bool {
	if t == nil {
		return false
	}
	elem, ok := t.elem.Get()
	if !ok {
		return false
	}
	if elem == item {
		return true
	}
	return t.left.Contains(item) || t.right.Contains(item)
}

// Len returns the number of values in the tree.
func (t *PlainTree[T]) Len() uint64 {
	if t.IsEmpty() {
		return 0
	}
	return std.SumAssumeNoOverflow(1, std.SumAssumeNoOverflow(t.left.Len(), t.right.Len()))
}

func (t *PlainTree[T]) Height() uint64 {
	if t.IsEmpty() {
		return 0
	}
	return std.SumAssumeNoOverflow(1, max(t.left.Height(), t.right.Height()))
}
