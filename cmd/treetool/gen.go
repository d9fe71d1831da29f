package main

import (
	"fmt"
	"log/slog"

	"github.com/bluesky-social/bintree/bintree"
	"github.com/bluesky-social/bintree/treegen"

	"github.com/urfave/cli/v2"
)

var cmdGen = &cli.Command{
	Name:  "gen",
	Usage: "generate a random tree",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "kind",
			Usage: "kind of tree: shape (random structure), bst (random inserts), chain (sorted inserts)",
			Value: "shape",
		},
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"n"},
			Usage:   "number of nodes",
			Value:   10,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed; zero picks one at random",
			EnvVars: []string{"TREETOOL_SEED"},
		},
		&cli.Int64Flag{
			Name:  "min",
			Usage: "smallest value",
			Value: 0,
		},
		&cli.Int64Flag{
			Name:  "max",
			Usage: "largest value",
			Value: 99,
		},
		&cli.IntFlag{
			Name:  "fill",
			Usage: "percent chance each child slot is filled (shape only)",
			Value: treegen.DefaultFillPercent,
		},
	},
	Action: runGen,
}

func runGen(cctx *cli.Context) error {
	size := cctx.Int("size")
	if size < 0 {
		return fmt.Errorf("size must not be negative: %d", size)
	}
	lo, hi := cctx.Int64("min"), cctx.Int64("max")
	if lo > hi {
		return fmt.Errorf("min (%d) is greater than max (%d)", lo, hi)
	}
	g := treegen.New(cctx.Int64("seed"))
	g.FillPercent = cctx.Int("fill")

	var tree bintree.Tree
	switch cctx.String("kind") {
	case "shape":
		tree = g.Shape(size, lo, hi)
	case "bst":
		tree = g.BST(size, lo, hi)
	case "chain":
		tree = treegen.Chain(size, true)
	default:
		return fmt.Errorf("unknown tree kind: %s", cctx.String("kind"))
	}
	slog.Info("generated tree", "kind", cctx.String("kind"), "size", size, "seed", cctx.Int64("seed"))
	return emit(cctx, describeTree(tree))
}
