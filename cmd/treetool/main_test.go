package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/bluesky-social/bintree/bintree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runs the app with captured output, returning stdout
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"treetool"}, args...))
	return out.String(), err
}

func TestShow(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "", "show", "[1,2,3,4,5,null,6]")
	require.NoError(t, err)
	assert.Contains(out, "Serialized: [1,2,3,4,5,null,6]")
	assert.Contains(out, "Height: 3")
	assert.Contains(out, "Balanced: true")
	assert.Contains(out, "BST: false")
	assert.Contains(out, "In-order: [4 2 5 1 3 6]")
	assert.Contains(out, "[L]")
	assert.Contains(out, "[R]")
}

func TestShowStdin(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "[2,1,3]\n", "--json", "show", "-")
	require.NoError(t, err)

	var rep treeReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal("[2,1,3]", rep.Serialized)
	assert.Equal(3, rep.Size)
	assert.True(rep.BST)
	assert.Equal([]int64{1, 2, 3}, rep.InOrder)
}

func TestShowMalformed(t *testing.T) {
	_, err := runApp(t, "", "show", "[1,,2]")
	assert.ErrorIs(t, err, bintree.ErrMalformedInput)

	_, err = runApp(t, "", "show")
	assert.Error(t, err)
}

func TestInsert(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "", "--json", "insert", "1", "2", "3", "4", "5")
	require.NoError(t, err)
	var rep treeReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(5, rep.Height)
	assert.False(rep.Balanced)

	_, err = runApp(t, "", "insert", "x")
	assert.Error(err)
}

func TestRebalance(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "", "--json", "rebalance", "[1,null,2,null,3,null,4,null,5]")
	require.NoError(t, err)
	var rep rebalanceReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(5, rep.Before.Height)
	assert.Equal(3, rep.After.Height)
	assert.True(rep.After.Balanced)
	assert.Equal("[3,1,4,null,2,null,5]", rep.After.Serialized)
	assert.Equal(rep.Before.InOrder, rep.After.InOrder)
}

func TestSerialize(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "", "serialize", "[ 1, 2, 3, null, null, null, null ]")
	require.NoError(t, err)
	assert.Equal("[1,2,3]\nRound trip: true\n", out)
}

func TestLCA(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "", "lca", "[1,2,3,4,5,null,6]", "4", "6")
	require.NoError(t, err)
	assert.Equal("Lowest common ancestor of 4 and 6: 1\n", out)

	_, err = runApp(t, "", "lca", "[1,2,3,4,5,null,6]", "4", "99")
	assert.ErrorIs(err, bintree.ErrValueNotFound)

	_, err = runApp(t, "", "lca", "[1,2,3]", "4")
	assert.Error(err)
}

func TestVertical(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "", "--json", "vertical", "[1,2,3,4,5,null,6]")
	require.NoError(t, err)
	var rep verticalReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal([][]int64{{4}, {2}, {1, 5}, {3}, {6}}, rep.Columns)

	out, err = runApp(t, "", "--json", "vertical", "[]")
	require.NoError(t, err)
	assert.Contains(out, `"columns": []`)
}

func TestPrune(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "", "--json", "prune", "--target", "1", "[1,2,3,1,5,null,1]")
	require.NoError(t, err)
	var rep pruneReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(int64(1), rep.Target)
	assert.Equal(1, rep.Removed)
	assert.Equal("[1,2,3,1,null,null,1]", rep.Result.Serialized)

	out, err = runApp(t, "", "prune", "-t", "4", "[1,2,3]")
	require.NoError(t, err)
	assert.Contains(out, "(empty tree)")
	assert.Contains(out, "removed 3 nodes")
}

func TestGen(t *testing.T) {
	assert := assert.New(t)

	for _, kind := range []string{"shape", "bst", "chain"} {
		out, err := runApp(t, "", "--json", "gen", "--kind", kind, "--size", "25", "--seed", "9")
		require.NoError(t, err, kind)
		var rep treeReport
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		assert.Equal(25, rep.Size, kind)
	}

	a, err := runApp(t, "", "gen", "--seed", "5")
	require.NoError(t, err)
	b, err := runApp(t, "", "gen", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(a, b)

	_, err = runApp(t, "", "gen", "--kind", "bogus")
	assert.Error(err)
	_, err = runApp(t, "", "gen", "--min", "10", "--max", "1")
	assert.Error(err)
}

func TestGenWideRange(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "", "--json", "gen", "--kind", "bst", "--size", "50", "--seed", "3", "--min", "-10", "--max", "9223372036854775806")
	require.NoError(t, err)
	var rep treeReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(rep.InOrder, 50)
	for _, v := range rep.InOrder {
		assert.GreaterOrEqual(v, int64(-10))
		assert.LessOrEqual(v, int64(9223372036854775806))
	}
}

func TestDemo(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "", "demo")
	require.NoError(t, err)
	assert.NotContains(out, "FAIL")
	assert.Contains(out, "0 failed")
}

func TestRenderTree(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("(empty tree)\n", renderTree(bintree.Tree{}))
	assert.Equal("7\n", renderTree(bintree.FromValues(7)))

	// left child is listed before right
	lines := strings.Split(strings.TrimSpace(renderTree(bintree.FromValues(2, 1, 3))), "\n")
	require.Len(t, lines, 3)
	assert.Equal("2", lines[0])
	assert.Contains(lines[1], "[L]")
	assert.Contains(lines[1], "1")
	assert.Contains(lines[2], "[R]")
	assert.Contains(lines[2], "3")
}

func TestParseLogLevel(t *testing.T) {
	assert := assert.New(t)

	testVec := []struct {
		Raw   string
		Level slog.Level
		OK    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{" error ", slog.LevelError, true},
		{"debug+2", slog.LevelDebug + 2, true},
		{"", slog.LevelWarn, false},
		{"verbose", slog.LevelWarn, false},
	}

	for _, c := range testVec {
		level, ok := parseLogLevel(c.Raw)
		assert.Equal(c.Level, level, c.Raw)
		assert.Equal(c.OK, ok, c.Raw)
	}
}
