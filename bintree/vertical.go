package bintree

// Groups values by column, from the leftmost column to the rightmost.
//
// The root is in column 0; a left child is one column left of its parent, and a right child one column right. Within a column, values are ordered top to bottom, then left to right within the same level. An empty tree gives nil.
func VerticalOrder(n *Node) [][]int64 {
	if n == nil {
		return nil
	}
	type placed struct {
		node *Node
		col  int
	}
	columns := make(map[int][]int64)
	minCol, maxCol := 0, 0
	queue := []placed{{node: n, col: 0}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		minCol = min(minCol, p.col)
		maxCol = max(maxCol, p.col)
		columns[p.col] = append(columns[p.col], p.node.Value)

		if p.node.Left != nil {
			queue = append(queue, placed{node: p.node.Left, col: p.col - 1})
		}
		if p.node.Right != nil {
			queue = append(queue, placed{node: p.node.Right, col: p.col + 1})
		}
	}
	// columns between minCol and maxCol are never empty, since offsets step by one
	out := make([][]int64, 0, maxCol-minCol+1)
	for c := minCol; c <= maxCol; c++ {
		out = append(out, columns[c])
	}
	return out
}
