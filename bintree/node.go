package bintree

// Represents a single node in a binary tree. The Left and Right pointers are owned by this node: a node must never be reachable from two parents.
type Node struct {
	Value int64
	Left  *Node
	Right *Node
}

func NewNode(v int64) *Node {
	return &Node{Value: v}
}

// Returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Creates a deep/recursive copy of the sub-tree. Returns nil for a nil node.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	out := &Node{Value: n.Value}
	type pair struct {
		src *Node
		dst *Node
	}
	stack := []pair{{src: n, dst: out}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.src.Left != nil {
			p.dst.Left = &Node{Value: p.src.Left.Value}
			stack = append(stack, pair{src: p.src.Left, dst: p.dst.Left})
		}
		if p.src.Right != nil {
			p.dst.Right = &Node{Value: p.src.Right.Value}
			stack = append(stack, pair{src: p.src.Right, dst: p.dst.Right})
		}
	}
	return out
}
