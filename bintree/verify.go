package bintree

import (
	"fmt"
)

// Checks the BST ordering invariant: every value in a node's left sub-tree is less than the node's value, and every value in its right sub-tree is greater or equal.
//
// An empty tree is valid. Returns an error wrapping ErrInvalidTree describing the first violation found.
func (t Tree) Verify() error {
	return verifyOrder(t.Root)
}

func verifyOrder(n *Node) error {
	if n == nil {
		return nil
	}
	// each pending node carries the half-open range [lo, hi) its value must fall in
	type bounded struct {
		node  *Node
		lo    int64
		hasLo bool
		hi    int64
		hasHi bool
	}
	stack := []bounded{{node: n}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := b.node.Value
		if b.hasLo && v < b.lo {
			return fmt.Errorf("%w: value %d in right sub-tree of %d", ErrInvalidTree, v, b.lo)
		}
		if b.hasHi && v >= b.hi {
			return fmt.Errorf("%w: value %d in left sub-tree of %d", ErrInvalidTree, v, b.hi)
		}
		if b.node.Left != nil {
			stack = append(stack, bounded{node: b.node.Left, lo: b.lo, hasLo: b.hasLo, hi: v, hasHi: true})
		}
		if b.node.Right != nil {
			stack = append(stack, bounded{node: b.node.Right, lo: v, hasLo: true, hi: b.hi, hasHi: b.hasHi})
		}
	}
	return nil
}
