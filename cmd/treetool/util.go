package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bluesky-social/bintree/bintree"

	"github.com/urfave/cli/v2"
)

const stdIOPath = "-"

const defaultLogLevel = slog.LevelWarn

// Accepts slog level names, with optional offsets (eg "debug+2"). Anything else falls back to warn.
func parseLogLevel(raw string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return defaultLogLevel, false
	}
	return level, true
}

// logs go to the error writer, so tree output stays clean
func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	level, ok := parseLogLevel(cctx.String("log-level"))
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	if !ok {
		logger.Warn("unrecognized log level, using default", "logLevel", cctx.String("log-level"), "default", defaultLogLevel.String())
	}
	return logger
}

// Reads a serialized tree from the given argument position. The argument "-" reads from stdin.
func loadTree(cctx *cli.Context, pos int) (bintree.Tree, error) {
	raw := cctx.Args().Get(pos)
	if raw == "" {
		return bintree.Tree{}, fmt.Errorf("need to provide serialized tree (eg: [1,2,3,null,4]) as an argument")
	}
	if raw == stdIOPath {
		b, err := io.ReadAll(cctx.App.Reader)
		if err != nil {
			return bintree.Tree{}, err
		}
		raw = string(b)
	}
	tree, err := bintree.Deserialize(raw)
	if err != nil {
		return bintree.Tree{}, err
	}
	slog.Debug("loaded tree", "size", tree.Size(), "height", tree.Height())
	return tree, nil
}

func parseValue(raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid tree value %q: %w", raw, err)
	}
	return v, nil
}

// Any command output which can be written either as text or JSON.
type report interface {
	writeText(w io.Writer)
}

func emit(cctx *cli.Context, r report) error {
	w := cctx.App.Writer
	if cctx.Bool("json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	r.writeText(w)
	return nil
}

// Common description of a single tree.
type treeReport struct {
	Serialized string  `json:"serialized"`
	Size       int     `json:"size"`
	Height     int     `json:"height"`
	Balanced   bool    `json:"balanced"`
	BST        bool    `json:"bst"`
	InOrder    []int64 `json:"inOrder"`
	Structure  string  `json:"-"`
}

func describeTree(t bintree.Tree) treeReport {
	inorder := t.InOrder()
	if inorder == nil {
		inorder = []int64{}
	}
	return treeReport{
		Serialized: bintree.Serialize(t),
		Size:       t.Size(),
		Height:     t.Height(),
		Balanced:   t.IsBalanced(),
		BST:        t.Verify() == nil,
		InOrder:    inorder,
		Structure:  renderTree(t),
	}
}

func (r treeReport) writeText(w io.Writer) {
	fmt.Fprint(w, r.Structure)
	fmt.Fprintf(w, "Serialized: %s\n", r.Serialized)
	fmt.Fprintf(w, "Size: %d\n", r.Size)
	fmt.Fprintf(w, "Height: %d\n", r.Height)
	fmt.Fprintf(w, "Balanced: %t\n", r.Balanced)
	fmt.Fprintf(w, "BST: %t\n", r.BST)
	fmt.Fprintf(w, "In-order: %v\n", r.InOrder)
}
