package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/internal/logging"
)

const diamondYAML = `start: A
goals: [D]
edges:
  - {from: A, to: B, cost: 1}
  - {from: A, to: C, cost: 5}
  - {from: B, to: D, cost: 1}
  - {from: C, to: D, cost: 1}
heuristic:
  A: 2
  B: 1
  C: 1
`

const corridorLayout = `%%%%%%
%P  .%
%%%%%%
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSolve_MixedProblemFiles(t *testing.T) {
	graphPath := writeFile(t, "diamond.yaml", diamondYAML)
	mazePath := writeFile(t, "corridor.lay", corridorLayout)

	reports, err := Solve(context.Background(), SolveConfig{
		Paths:    []string{mazePath, graphPath},
		Strategy: search.UniformCost,
		Workers:  2,
		Render:   true,
	}, logging.NewNop(), nil)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	maze := reports[0]
	assert.Equal(t, mazePath, maze.Problem)
	assert.True(t, maze.Found)
	assert.Equal(t, []string{"East", "East", "East"}, maze.Actions)
	assert.Equal(t, 3.0, maze.Cost)
	assert.Contains(t, maze.Rendered, "%Poo.%")

	g := reports[1]
	assert.Equal(t, graphPath, g.Problem)
	assert.Equal(t, "ucs", g.Strategy)
	assert.Equal(t, []string{"A->B", "B->D"}, g.Actions)
	assert.Equal(t, 2.0, g.Cost)
	assert.Equal(t, "A -> B -> D", g.Rendered)
}

func TestSolve_Heuristics(t *testing.T) {
	graphPath := writeFile(t, "diamond.yaml", diamondYAML)
	mazePath := writeFile(t, "corridor.lay", corridorLayout)
	ctx := context.Background()

	reports, err := Solve(ctx, SolveConfig{
		Paths: []string{graphPath}, Strategy: search.AStar, Heuristic: HeuristicTable,
	}, logging.NewNop(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, reports[0].Cost)

	reports, err = Solve(ctx, SolveConfig{
		Paths: []string{mazePath}, Strategy: search.AStar, Heuristic: HeuristicEuclidean,
	}, logging.NewNop(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, reports[0].Cost)

	_, err = Solve(ctx, SolveConfig{
		Paths: []string{graphPath}, Strategy: search.AStar, Heuristic: HeuristicManhattan,
	}, logging.NewNop(), nil)
	assert.ErrorIs(t, err, ErrUnsupportedHeuristic)

	_, err = Solve(ctx, SolveConfig{
		Paths: []string{mazePath}, Strategy: search.AStar, Heuristic: HeuristicTable,
	}, logging.NewNop(), nil)
	assert.ErrorIs(t, err, ErrUnsupportedHeuristic)
}

func TestSolve_Errors(t *testing.T) {
	_, err := Solve(context.Background(), SolveConfig{Strategy: search.BreadthFirst}, logging.NewNop(), nil)
	assert.Error(t, err)

	_, err = Solve(context.Background(), SolveConfig{
		Paths:    []string{filepath.Join(t.TempDir(), "missing.yaml")},
		Strategy: search.BreadthFirst,
	}, logging.NewNop(), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	noStart := writeFile(t, "bad.lay", "%%%\n%.%\n%%%\n")
	_, err = Solve(context.Background(), SolveConfig{
		Paths:    []string{noStart},
		Strategy: search.BreadthFirst,
	}, logging.NewNop(), nil)
	assert.Error(t, err)
}

func TestWriteReports(t *testing.T) {
	reports := []Report{{
		Problem:  "diamond.yaml",
		Strategy: "bfs",
		Found:    true,
		Actions:  []string{"A->B", "B->D"},
		Cost:     2,
		Expanded: 2,
	}}

	var text bytes.Buffer
	require.NoError(t, WriteReports(&text, reports, "text"))
	assert.Contains(t, text.String(), "actions:")
	assert.Contains(t, text.String(), "A->B, B->D")

	var out bytes.Buffer
	require.NoError(t, WriteReports(&out, reports, "json"))
	var decoded []Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, reports, decoded)

	assert.Error(t, WriteReports(&out, reports, "xml"))
}
