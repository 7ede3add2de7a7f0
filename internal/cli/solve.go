// Package cli implements the gsearch commands on top of the search library.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/problems/graph"
	"github.com/pdrpinto/search/problems/grid"
)

// Heuristic names accepted by SolveConfig.Heuristic.
const (
	HeuristicNull      = "null"
	HeuristicManhattan = "manhattan"
	HeuristicEuclidean = "euclidean"
	HeuristicTable     = "table"
)

// ErrUnsupportedHeuristic is returned when a heuristic does not apply to a problem kind.
var ErrUnsupportedHeuristic = errors.New("heuristic not supported for this problem")

// SolveConfig holds the options of one solve invocation.
type SolveConfig struct {
	Paths         []string
	Strategy      search.Strategy
	Heuristic     string
	MaxExpansions int
	MaxDepth      int
	Workers       int
	Timeout       time.Duration
	Render        bool
}

// Report is the printable outcome of solving one problem file.
type Report struct {
	Problem   string   `json:"problem"`
	Strategy  string   `json:"strategy"`
	Found     bool     `json:"found"`
	Actions   []string `json:"actions"`
	Cost      float64  `json:"cost"`
	Expanded  int      `json:"expanded"`
	Generated int      `json:"generated"`
	Rendered  string   `json:"rendered,omitempty"`
}

type problemKind int

const (
	kindGraph problemKind = iota
	kindMaze
)

func kindOf(path string) problemKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kindGraph
	default:
		return kindMaze
	}
}

// Solve loads every file in cfg.Paths and solves it. Graph definitions and
// maze layouts are solved as two concurrent batches. Reports keep the order
// of cfg.Paths.
func Solve(ctx context.Context, cfg SolveConfig, logger *slog.Logger, observer search.Observer) ([]Report, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("no problem files given")
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	options := []search.Option{
		search.WithLogger(logger),
		search.WithMaxExpansions(cfg.MaxExpansions),
		search.WithMaxDepth(cfg.MaxDepth),
		search.WithWorkers(cfg.Workers),
	}
	if observer != nil {
		options = append(options, search.WithObserver(observer))
	}

	var graphPaths, mazePaths []string
	for _, path := range cfg.Paths {
		if kindOf(path) == kindGraph {
			graphPaths = append(graphPaths, path)
		} else {
			mazePaths = append(mazePaths, path)
		}
	}

	reports := make(map[string]Report, len(cfg.Paths))
	if len(graphPaths) > 0 {
		if err := solveGraphs(ctx, cfg, graphPaths, options, reports); err != nil {
			return nil, err
		}
	}
	if len(mazePaths) > 0 {
		if err := solveMazes(ctx, cfg, mazePaths, options, reports); err != nil {
			return nil, err
		}
	}

	ordered := make([]Report, 0, len(cfg.Paths))
	for _, path := range cfg.Paths {
		ordered = append(ordered, reports[path])
	}
	return ordered, nil
}

func solveGraphs(ctx context.Context, cfg SolveConfig, paths []string, options []search.Option, reports map[string]Report) error {
	problems := make([]search.Problem[string, string], 0, len(paths))
	for _, path := range paths {
		g, err := graph.Load(path)
		if err != nil {
			return err
		}
		problems = append(problems, g)
	}

	var heuristic search.Heuristic[string, string]
	switch cfg.Heuristic {
	case "", HeuristicNull:
	case HeuristicTable:
		// Each file carries its own estimate table.
		heuristic = func(state string, problem search.Problem[string, string]) float64 {
			return problem.(*graph.Graph).Heuristic()(state, problem)
		}
	default:
		return fmt.Errorf("%w: %q on graph problems", ErrUnsupportedHeuristic, cfg.Heuristic)
	}

	results, err := search.SolveAll(ctx, cfg.Strategy, problems, heuristic, options...)
	if err != nil {
		return err
	}
	for i, result := range results {
		report := Report{
			Problem:   paths[i],
			Strategy:  cfg.Strategy.String(),
			Found:     result.Found,
			Actions:   result.Actions,
			Cost:      result.Cost,
			Expanded:  result.Expanded,
			Generated: result.Generated,
		}
		if cfg.Render && result.Found {
			report.Rendered = strings.Join(result.Path, " -> ")
		}
		reports[paths[i]] = report
	}
	return nil
}

func solveMazes(ctx context.Context, cfg SolveConfig, paths []string, options []search.Option, reports map[string]Report) error {
	problems := make([]search.Problem[grid.Point, grid.Direction], 0, len(paths))
	mazes := make([]*grid.Maze, 0, len(paths))
	for _, path := range paths {
		m, err := grid.Load(path)
		if err != nil {
			return err
		}
		mazes = append(mazes, m)
		problems = append(problems, m)
	}

	var heuristic search.Heuristic[grid.Point, grid.Direction]
	switch cfg.Heuristic {
	case "", HeuristicNull:
	case HeuristicManhattan:
		heuristic = grid.ManhattanHeuristic
	case HeuristicEuclidean:
		heuristic = grid.EuclideanHeuristic
	default:
		return fmt.Errorf("%w: %q on maze problems", ErrUnsupportedHeuristic, cfg.Heuristic)
	}

	results, err := search.SolveAll(ctx, cfg.Strategy, problems, heuristic, options...)
	if err != nil {
		return err
	}
	for i, result := range results {
		actions := make([]string, 0, len(result.Actions))
		for _, action := range result.Actions {
			actions = append(actions, string(action))
		}
		report := Report{
			Problem:   paths[i],
			Strategy:  cfg.Strategy.String(),
			Found:     result.Found,
			Actions:   actions,
			Cost:      result.Cost,
			Expanded:  result.Expanded,
			Generated: result.Generated,
		}
		if cfg.Render {
			report.Rendered = mazes[i].Render(result.Path)
		}
		reports[paths[i]] = report
	}
	return nil
}

// WriteReports prints reports as "text" or "json".
func WriteReports(w io.Writer, reports []Report, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	case "", "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, report := range reports {
			fmt.Fprintf(tw, "problem:\t%s\n", report.Problem)
			fmt.Fprintf(tw, "strategy:\t%s\n", report.Strategy)
			fmt.Fprintf(tw, "found:\t%t\n", report.Found)
			fmt.Fprintf(tw, "actions:\t%s\n", strings.Join(report.Actions, ", "))
			fmt.Fprintf(tw, "cost:\t%g\n", report.Cost)
			fmt.Fprintf(tw, "expanded:\t%d\n", report.Expanded)
			fmt.Fprintf(tw, "generated:\t%d\n", report.Generated)
			if err := tw.Flush(); err != nil {
				return err
			}
			if report.Rendered != "" {
				fmt.Fprintln(w, report.Rendered)
			}
			fmt.Fprintln(w)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
