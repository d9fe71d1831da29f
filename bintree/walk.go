package bintree

// Lists values in-order (left sub-tree, node, right sub-tree). For a valid BST this is ascending order.
func InOrder(n *Node) []int64 {
	var out []int64
	var stack []*Node
	cur := n
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.Value)
		cur = cur.Right
	}
	return out
}

// Lists values pre-order (node, left sub-tree, right sub-tree).
func PreOrder(n *Node) []int64 {
	var out []int64
	if n == nil {
		return out
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.Value)
		// right first, so left is popped first
		if cur.Right != nil {
			stack = append(stack, cur.Right)
		}
		if cur.Left != nil {
			stack = append(stack, cur.Left)
		}
	}
	return out
}

// Lists values post-order (left sub-tree, right sub-tree, node).
func PostOrder(n *Node) []int64 {
	nodes := postOrderNodes(n, nil)
	out := make([]int64, 0, len(nodes))
	for _, c := range nodes {
		out = append(out, c.Value)
	}
	return out
}

// Returns the nodes of a sub-tree in post-order, so every child comes before its parent.
//
// If stop is non-nil and returns true for a node, that node is included but its children are not.
func postOrderNodes(n *Node, stop func(*Node) bool) []*Node {
	if n == nil {
		return nil
	}
	// reversed (node, right, left) pre-order is post-order
	var rev []*Node
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rev = append(rev, cur)
		if stop != nil && stop(cur) {
			continue
		}
		if cur.Left != nil {
			stack = append(stack, cur.Left)
		}
		if cur.Right != nil {
			stack = append(stack, cur.Right)
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// Number of levels in the sub-tree: 0 for nil, 1 for a single node.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	height := 0
	level := []*Node{n}
	for len(level) > 0 {
		height++
		var next []*Node
		for _, c := range level {
			if c.Left != nil {
				next = append(next, c.Left)
			}
			if c.Right != nil {
				next = append(next, c.Right)
			}
		}
		level = next
	}
	return height
}

// Number of nodes in the sub-tree.
func Size(n *Node) int {
	count := 0
	walkNodes(n, func(*Node) bool {
		count++
		return true
	})
	return count
}

// Checks whether, at every node, the heights of the left and right sub-trees differ by at most one.
//
// Heights are computed bottom-up in a single pass. An empty tree is balanced.
func IsBalanced(n *Node) bool {
	heights := make(map[*Node]int)
	for _, c := range postOrderNodes(n, nil) {
		lh := heights[c.Left]
		rh := heights[c.Right]
		diff := lh - rh
		if diff < -1 || diff > 1 {
			return false
		}
		heights[c] = 1 + max(lh, rh)
	}
	return true
}

// Depth-first search for a value anywhere in the sub-tree. Does not assume BST ordering.
func Contains(n *Node, v int64) bool {
	found := false
	walkNodes(n, func(c *Node) bool {
		if c.Value == v {
			found = true
			return false
		}
		return true
	})
	return found
}

// Checks that two sub-trees have the same shape and the same value at every position.
func Equal(a, b *Node) bool {
	type pair struct {
		a *Node
		b *Node
	}
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == nil && p.b == nil {
			continue
		}
		if p.a == nil || p.b == nil {
			return false
		}
		if p.a.Value != p.b.Value {
			return false
		}
		stack = append(stack, pair{p.a.Left, p.b.Left}, pair{p.a.Right, p.b.Right})
	}
	return true
}

// Visits every node depth-first (pre-order). Stops early if f returns false.
func walkNodes(n *Node, f func(*Node) bool) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(cur) {
			return
		}
		if cur.Right != nil {
			stack = append(stack, cur.Right)
		}
		if cur.Left != nil {
			stack = append(stack, cur.Left)
		}
	}
}
