package bintree

// Finds the lowest (deepest) node which has both p and q as descendants, where a node counts as its own descendant.
//
// A node holding p or q is returned without looking below it, so if one value is an ancestor of the other, that ancestor is the result. The result is only meaningful when both values are present in the sub-tree: check with Contains first, or use Tree.CommonAncestor.
func LowestCommonAncestor(n *Node, p, q int64) *Node {
	isTarget := func(c *Node) bool {
		return c.Value == p || c.Value == q
	}
	// found[c] is the result for the sub-tree rooted at c; nil when nothing was found
	found := make(map[*Node]*Node)
	for _, c := range postOrderNodes(n, isTarget) {
		if isTarget(c) {
			found[c] = c
			continue
		}
		left := found[c.Left]
		right := found[c.Right]
		switch {
		case left != nil && right != nil:
			found[c] = c
		case left != nil:
			found[c] = left
		case right != nil:
			found[c] = right
		}
	}
	return found[n]
}
