package bintree

// Removes every sub-tree which contains no node with the target value. Returns the new root, which is nil if nothing survives.
//
// Works bottom-up: each child pointer is first replaced by its own pruned result, then a node survives if its value is target or if it still has a child. The sub-tree is modified in place; the old root must not be used after this call.
func Prune(n *Node, target int64) *Node {
	if n == nil {
		return nil
	}
	survived := make(map[*Node]bool)
	for _, c := range postOrderNodes(n, nil) {
		if c.Left != nil && !survived[c.Left] {
			c.Left = nil
		}
		if c.Right != nil && !survived[c.Right] {
			c.Right = nil
		}
		if c.Value == target || c.Left != nil || c.Right != nil {
			survived[c] = true
		}
	}
	if !survived[n] {
		return nil
	}
	return n
}
