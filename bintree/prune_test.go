package bintree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// root 1, left 2 (children 1 and 5), right 3 (right child 1)
func repeatedTargetTree() Tree {
	return Tree{Root: &Node{
		Value: 1,
		Left: &Node{
			Value: 2,
			Left:  &Node{Value: 1},
			Right: &Node{Value: 5},
		},
		Right: &Node{
			Value: 3,
			Right: &Node{Value: 1},
		},
	}}
}

func TestPruneRepeatedTarget(t *testing.T) {
	assert := assert.New(t)

	tree := repeatedTargetTree()
	oldLeft := tree.Root.Left
	tree.Prune(1)

	assert.Equal("[1,2,3,1,null,null,1]", Serialize(tree))
	// children are rewritten in place
	assert.Same(oldLeft, tree.Root.Left)
	assert.Nil(oldLeft.Right)
	assert.Equal(int64(1), tree.Root.Right.Right.Value)
	assert.Nil(tree.Root.Right.Left)
}

func TestPrune(t *testing.T) {
	msg := "prune keeps only nodes on a path to the target"

	testVec := []struct {
		Name   string
		Tree   Tree
		Target int64
		Result string
	}{
		{"target at root only", sampleTree(), 1, "[1]"},
		{"target at leaf", sampleTree(), 6, "[1,null,3,null,6]"},
		{"target in left sub-tree", sampleTree(), 5, "[1,2,null,null,5]"},
		{"target missing", BuildFromLevelOrder(Values(1, 2, 3)), 4, "[]"},
		{"all nodes match", BuildFromLevelOrder(Values(5, 5, 5)), 5, "[5,5,5]"},
		{"empty", Tree{}, 1, "[]"},
		{"single match", FromValues(7), 7, "[7]"},
		{"single miss", FromValues(7), 8, "[]"},
	}

	for _, c := range testVec {
		c.Tree.Prune(c.Target)
		assert.Equal(t, c.Result, Serialize(c.Tree), msg+": "+c.Name)
	}
}

func TestPruneSurvivorsLeadToTarget(t *testing.T) {
	assert := assert.New(t)

	tree := BuildFromLevelOrder([]Slot{V(4), V(1), V(4), V(2), V(9), Null, V(4), V(4), Null, V(3), V(8)})
	root := Prune(tree.Root, 4)
	walkNodes(root, func(n *Node) bool {
		assert.True(Contains(n, 4), n.Value)
		return true
	})
	assert.False(Contains(root, 9))
	assert.False(Contains(root, 3))
}

func TestPruneNil(t *testing.T) {
	assert.Nil(t, Prune(nil, 0))
}
