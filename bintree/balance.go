package bintree

// Builds a new, height-balanced tree holding the same values as t.
//
// Values are read in-order, then rebuilt by picking the middle of each range as its root (the lower middle for even-length ranges). If t is a BST, the result is a BST with identical in-order listing; otherwise the result is still balanced, but not ordered. The input tree is not modified.
//
// Output height is ceil(log2(n+1)) for n values.
func Rebalance(t Tree) Tree {
	return Tree{Root: BuildBalanced(InOrder(t.Root))}
}

// Builds a height-balanced tree from a slice of values, preserving their order as the in-order listing of the result.
func BuildBalanced(vals []int64) *Node {
	return buildBalanced(vals, 0, len(vals)-1)
}

// recursion depth is bounded by the height of the result, which is logarithmic
func buildBalanced(vals []int64, lo, hi int) *Node {
	if lo > hi {
		return nil
	}
	mid := (lo + hi) / 2
	n := NewNode(vals[mid])
	n.Left = buildBalanced(vals, lo, mid-1)
	n.Right = buildBalanced(vals, mid+1, hi)
	return n
}
