package bintree

// Adds a value to the tree, keeping BST ordering. Values equal to a node go to its right.
//
// No rebalancing is done: inserting sorted values produces a linear chain. See Rebalance.
func (t *Tree) Insert(v int64) {
	t.Root = Insert(t.Root, v)
}

// Inserts v in to the sub-tree under n, returning the (possibly new) sub-tree root.
func Insert(n *Node, v int64) *Node {
	if n == nil {
		return NewNode(v)
	}
	cur := n
	for {
		if v < cur.Value {
			if cur.Left == nil {
				cur.Left = NewNode(v)
				return n
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = NewNode(v)
				return n
			}
			cur = cur.Right
		}
	}
}
