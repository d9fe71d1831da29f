package main

import (
	"github.com/bluesky-social/bintree/bintree"

	"github.com/xlab/treeprint"
)

// Renders tree structure for display, with each child tagged by side ("L" or "R").
func renderTree(t bintree.Tree) string {
	if t.Root == nil {
		return "(empty tree)\n"
	}
	tree := treeprint.NewWithRoot(t.Root.Value)

	type pending struct {
		node   *bintree.Node
		branch treeprint.Tree
	}
	// explicit stack so long chains don't recurse here; children print in the order they are added
	stack := []pending{{node: t.Root, branch: tree}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children := []struct {
			side string
			node *bintree.Node
		}{
			{"L", p.node.Left},
			{"R", p.node.Right},
		}
		for _, c := range children {
			if c.node == nil {
				continue
			}
			if c.node.IsLeaf() {
				p.branch.AddMetaNode(c.side, c.node.Value)
				continue
			}
			sub := p.branch.AddMetaBranch(c.side, c.node.Value)
			stack = append(stack, pending{node: c.node, branch: sub})
		}
	}
	return tree.String()
}
