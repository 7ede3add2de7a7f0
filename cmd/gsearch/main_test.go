package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes rootCmd. Flag values persist between calls, so tests
// set every flag they depend on.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStrategiesCommand(t *testing.T) {
	out, err := runCommand(t, "strategies")
	require.NoError(t, err)
	for _, name := range []string{"dfs", "bfs", "ucs", "astar"} {
		assert.Contains(t, out, name)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gsearch version dev\n", out)
}

func TestSolveCommand(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "corridor.lay")
	require.NoError(t, os.WriteFile(layout, []byte("%%%%%%\n%P  .%\n%%%%%%\n"), 0o644))
	metricsPath := filepath.Join(dir, "metrics.prom")

	out, err := runCommand(t, "solve", layout,
		"--strategy", "astar", "--heuristic", "manhattan",
		"--metrics-file", metricsPath, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "East, East, East")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gsearch_searches_total{outcome="found",strategy="astar"} 1`)
}

func TestSolveCommand_NoPathExitCode(t *testing.T) {
	dir := t.TempDir()
	graphFile := filepath.Join(dir, "island.yaml")
	require.NoError(t, os.WriteFile(graphFile, []byte("start: A\ngoals: [Z]\nedges:\n  - {from: A, to: B, cost: 1}\n"), 0o644))

	_, err := runCommand(t, "solve", graphFile, "--strategy", "bfs", "--heuristic", "null", "--metrics-file", "")
	var code exitCode
	require.ErrorAs(t, err, &code)
	assert.Equal(t, exitCode(2), code)
}

func TestSolveCommand_BadStrategy(t *testing.T) {
	_, err := runCommand(t, "solve", "whatever.lay", "--strategy", "greedy")
	assert.Error(t, err)
}
