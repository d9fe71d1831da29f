// Package treegen generates random and degenerate binary trees, for tests and demos.
package treegen

import (
	"math"

	"github.com/bluesky-social/bintree/bintree"

	"github.com/brianvoe/gofakeit/v6"
)

// percent chance that any given child slot is filled when generating random shapes
const DefaultFillPercent = 70

type Generator struct {
	faker *gofakeit.Faker

	// FillPercent is the chance (out of 100) that a child slot gets a node in Shape.
	FillPercent int
}

// Creates a generator. The same non-zero seed always produces the same trees; a zero seed is random.
func New(seed int64) *Generator {
	return &Generator{
		faker:       gofakeit.New(seed),
		FillPercent: DefaultFillPercent,
	}
}

// Random value in the closed range [min, max].
func (g *Generator) Value(min, max int64) int64 {
	if max <= min {
		return min
	}
	// two's complement wrap gives the true width even when max-min overflows int64
	span := uint64(max - min)
	if span < math.MaxInt32 {
		return min + int64(g.faker.Number(0, int(span)))
	}
	if span < math.MaxInt64 {
		return min + int64(g.faker.Uint64()%(span+1))
	}
	for {
		v := g.faker.Int64()
		if v >= min && v <= max {
			return v
		}
	}
}

// Random values in the closed range [min, max].
func (g *Generator) Values(n int, min, max int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = g.Value(min, max)
	}
	return out
}

// Builds a BST by inserting n random values, in the order drawn.
func (g *Generator) BST(n int, min, max int64) bintree.Tree {
	return bintree.FromValues(g.Values(n, min, max)...)
}

// Random level-order listing describing a tree of exactly n nodes with values drawn from [min, max].
func (g *Generator) LevelOrder(n int, min, max int64) []bintree.Slot {
	if n <= 0 {
		return []bintree.Slot{}
	}
	slots := []bintree.Slot{bintree.V(g.Value(min, max))}
	placed := 1
	// nodes already listed whose two child slots have not been listed yet
	pending := 1
	for placed < n {
		pending--
		for side := 0; side < 2 && placed < n; side++ {
			// the last open slot has to be filled, or the listing would end short of n nodes
			mustFill := side == 1 && pending == 0
			if mustFill || g.faker.Number(1, 100) <= g.FillPercent {
				slots = append(slots, bintree.V(g.Value(min, max)))
				placed++
				pending++
			} else {
				slots = append(slots, bintree.Null)
			}
		}
	}
	return slots
}

// Random-shape tree of exactly n nodes. Values are not ordered, so the result is usually not a BST.
func (g *Generator) Shape(n int, min, max int64) bintree.Tree {
	return bintree.BuildFromLevelOrder(g.LevelOrder(n, min, max))
}

// Builds the same chain as inserting 1..n in ascending order (every node a right child), or n..1 in descending order (every node a left child). Nodes are linked directly rather than inserted, so long chains are cheap.
func Chain(n int, ascending bool) bintree.Tree {
	if n <= 0 {
		return bintree.Tree{}
	}
	var root, cur *bintree.Node
	for i := 1; i <= n; i++ {
		v := int64(i)
		if !ascending {
			v = int64(n - i + 1)
		}
		next := bintree.NewNode(v)
		switch {
		case root == nil:
			root = next
		case ascending:
			cur.Right = next
		default:
			cur.Left = next
		}
		cur = next
	}
	return bintree.Tree{Root: root}
}
