package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bluesky-social/bintree/bintree"

	"github.com/urfave/cli/v2"
)

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "run the reference scenarios and report results",
	Action: runDemo,
}

type scenario struct {
	name string
	want string
	run  func() string
}

// root 1, left 2 (children 4 and 5), right 3 (right child 6)
func demoSample() bintree.Tree {
	return bintree.BuildFromLevelOrder([]bintree.Slot{
		bintree.V(1), bintree.V(2), bintree.V(3), bintree.V(4), bintree.V(5), bintree.Null, bintree.V(6),
	})
}

func describeBalance(t bintree.Tree) string {
	out := bintree.Rebalance(t)
	return fmt.Sprintf("balanced=%t rebalanced-height=%d rebalanced-balanced=%t inorder=%v",
		t.IsBalanced(), out.Height(), out.IsBalanced(), out.InOrder())
}

var scenarios = []scenario{
	{
		name: "rebalance already balanced tree",
		want: "balanced=true rebalanced-height=3 rebalanced-balanced=true inorder=[1 2 3 4 5 6 7]",
		run:  func() string { return describeBalance(bintree.FromValues(4, 2, 6, 1, 3, 5, 7)) },
	},
	{
		name: "rebalance right skewed tree",
		want: "balanced=false rebalanced-height=3 rebalanced-balanced=true inorder=[1 2 3 4 5]",
		run:  func() string { return describeBalance(bintree.FromValues(1, 2, 3, 4, 5)) },
	},
	{
		name: "rebalance left skewed tree",
		want: "balanced=false rebalanced-height=3 rebalanced-balanced=true inorder=[1 2 3 4 5]",
		run:  func() string { return describeBalance(bintree.FromValues(5, 4, 3, 2, 1)) },
	},
	{
		name: "rebalance empty tree",
		want: "balanced=true rebalanced-height=0 rebalanced-balanced=true inorder=[]",
		run:  func() string { return describeBalance(bintree.Tree{}) },
	},
	{
		name: "rebalance single node",
		want: "balanced=true rebalanced-height=1 rebalanced-balanced=true inorder=[42]",
		run:  func() string { return describeBalance(bintree.FromValues(42)) },
	},
	{
		name: "serialize and deserialize",
		want: "[1,2,3,4,5,null,6] equal=true",
		run: func() string {
			tree := demoSample()
			text := bintree.Serialize(tree)
			again, err := bintree.Deserialize(text)
			if err != nil {
				return err.Error()
			}
			return fmt.Sprintf("%s equal=%t", text, tree.Equal(again))
		},
	},
	{
		name: "serialize empty tree",
		want: "[] equal=true",
		run: func() string {
			again, err := bintree.Deserialize(bintree.Serialize(bintree.Tree{}))
			if err != nil {
				return err.Error()
			}
			return fmt.Sprintf("%s equal=%t", bintree.Serialize(again), again.IsEmpty())
		},
	},
	{
		name: "lowest common ancestor in different sub-trees",
		want: "1",
		run:  func() string { return demoAncestor(demoSample(), 4, 6) },
	},
	{
		name: "lowest common ancestor where one is ancestor of the other",
		want: "2",
		run:  func() string { return demoAncestor(bintree.BuildFromLevelOrder(bintree.Values(1, 2, 3, 4)), 2, 4) },
	},
	{
		name: "lowest common ancestor of missing value",
		want: "value not found",
		run: func() string {
			if _, err := demoSample().CommonAncestor(4, 99); err != nil {
				return "value not found"
			}
			return "found"
		},
	},
	{
		name: "vertical order",
		want: "[[4] [2] [1 5] [3] [6]]",
		run:  func() string { return fmt.Sprint(demoSample().VerticalOrder()) },
	},
	{
		name: "vertical order of left line",
		want: "[[3] [2] [1]]",
		run: func() string {
			tree := bintree.BuildFromLevelOrder([]bintree.Slot{bintree.V(1), bintree.V(2), bintree.Null, bintree.V(3)})
			return fmt.Sprint(tree.VerticalOrder())
		},
	},
	{
		name: "vertical order of complete tree",
		want: "[[4] [2] [1 5 6] [3] [7]]",
		run: func() string {
			return fmt.Sprint(bintree.BuildFromLevelOrder(bintree.Values(1, 2, 3, 4, 5, 6, 7)).VerticalOrder())
		},
	},
	{
		name: "prune with repeated target",
		want: "[1,2,3,1,null,null,1]",
		run: func() string {
			tree := bintree.Tree{Root: &bintree.Node{
				Value: 1,
				Left:  &bintree.Node{Value: 2, Left: bintree.NewNode(1), Right: bintree.NewNode(5)},
				Right: &bintree.Node{Value: 3, Right: bintree.NewNode(1)},
			}}
			tree.Prune(1)
			return bintree.Serialize(tree)
		},
	},
	{
		name: "prune for missing target",
		want: "[]",
		run: func() string {
			tree := bintree.BuildFromLevelOrder(bintree.Values(1, 2, 3))
			tree.Prune(4)
			return bintree.Serialize(tree)
		},
	},
	{
		name: "prune where every node matches",
		want: "[5,5,5]",
		run: func() string {
			tree := bintree.BuildFromLevelOrder(bintree.Values(5, 5, 5))
			tree.Prune(5)
			return bintree.Serialize(tree)
		},
	},
}

func demoAncestor(t bintree.Tree, p, q int64) string {
	v, err := t.CommonAncestor(p, q)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprint(v)
}

type scenarioResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Got    string `json:"got"`
	Want   string `json:"want"`
}

type demoReport struct {
	Scenarios []scenarioResult `json:"scenarios"`
	Failed    int              `json:"failed"`
}

func (r demoReport) writeText(w io.Writer) {
	for _, s := range r.Scenarios {
		status := "PASS"
		if !s.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", status, s.Name, s.Got)
		if !s.Passed {
			fmt.Fprintf(w, "\twant: %s\n", s.Want)
		}
	}
	fmt.Fprintf(w, "%d scenarios, %d failed\n", len(r.Scenarios), r.Failed)
}

func runDemo(cctx *cli.Context) error {
	var rep demoReport
	for _, s := range scenarios {
		got := s.run()
		res := scenarioResult{Name: s.name, Passed: got == s.want, Got: got, Want: s.want}
		if !res.Passed {
			rep.Failed++
			slog.Warn("scenario failed", "scenario", s.name, "got", got, "want", s.want)
		}
		rep.Scenarios = append(rep.Scenarios, res)
	}
	if err := emit(cctx, rep); err != nil {
		return err
	}
	if rep.Failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", rep.Failed, len(rep.Scenarios))
	}
	return nil
}
