package bintree

import (
	"errors"
	"fmt"
)

// Handle on a binary tree. The zero value is an empty tree.
type Tree struct {
	Root *Node
}

var ErrMalformedInput = errors.New("malformed serialized tree")

var ErrValueNotFound = errors.New("value not found in tree")

var ErrInvalidTree = errors.New("invalid binary search tree")

func (t Tree) IsEmpty() bool {
	return t.Root == nil
}

// Builds a BST by inserting each value in turn. Sorted input gives a degenerate chain.
func FromValues(vals ...int64) Tree {
	var t Tree
	for _, v := range vals {
		t.Insert(v)
	}
	return t
}

func (t Tree) InOrder() []int64 {
	return InOrder(t.Root)
}

func (t Tree) PreOrder() []int64 {
	return PreOrder(t.Root)
}

func (t Tree) PostOrder() []int64 {
	return PostOrder(t.Root)
}

func (t Tree) Height() int {
	return Height(t.Root)
}

func (t Tree) Size() int {
	return Size(t.Root)
}

func (t Tree) IsBalanced() bool {
	return IsBalanced(t.Root)
}

func (t Tree) Contains(v int64) bool {
	return Contains(t.Root, v)
}

func (t Tree) Equal(other Tree) bool {
	return Equal(t.Root, other.Root)
}

func (t Tree) Clone() Tree {
	return Tree{Root: Clone(t.Root)}
}

func (t Tree) VerticalOrder() [][]int64 {
	return VerticalOrder(t.Root)
}

// Removes every sub-tree which does not contain target, and updates the root. The tree is modified in place.
func (t *Tree) Prune(target int64) {
	t.Root = Prune(t.Root, target)
}

// Finds the lowest common ancestor of p and q, first checking that both values exist in the tree.
//
// Returns an error wrapping ErrValueNotFound if either value is missing.
func (t Tree) CommonAncestor(p, q int64) (int64, error) {
	for _, v := range []int64{p, q} {
		if !Contains(t.Root, v) {
			return 0, fmt.Errorf("lowest common ancestor of %d and %d: %w: %d", p, q, ErrValueNotFound, v)
		}
	}
	n := LowestCommonAncestor(t.Root, p, q)
	if n == nil {
		// unreachable when both values are present
		return 0, fmt.Errorf("lowest common ancestor of %d and %d: %w", p, q, ErrValueNotFound)
	}
	return n.Value, nil
}
