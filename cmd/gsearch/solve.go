package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/search"
	"github.com/pdrpinto/search/internal/cli"
	"github.com/pdrpinto/search/metrics"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve <file>...",
	Short: "Solve one or more problem files",
	Long: `Solves each problem file and prints the action sequence, its cost and the
number of expanded states. Files ending in .yaml or .yml are weighted graphs;
anything else is read as a maze layout ('%' wall, 'P' start, '.' goal).

Exits with status 2 when at least one problem has no solution.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFromFlags(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		strategyName, _ := flags.GetString("strategy")
		strategy, err := search.ParseStrategy(strategyName)
		if err != nil {
			return err
		}
		cfg := cli.SolveConfig{Paths: args, Strategy: strategy}
		cfg.Heuristic, _ = flags.GetString("heuristic")
		cfg.MaxExpansions, _ = flags.GetInt("max-expansions")
		cfg.MaxDepth, _ = flags.GetInt("max-depth")
		cfg.Workers, _ = flags.GetInt("workers")
		cfg.Timeout, _ = flags.GetDuration("timeout")
		cfg.Render, _ = flags.GetBool("render")
		output, _ := flags.GetString("output")
		metricsFile, _ := flags.GetString("metrics-file")

		var observer search.Observer
		registry := prometheus.NewRegistry()
		if metricsFile != "" {
			collector, err := metrics.New(registry, "gsearch")
			if err != nil {
				return fmt.Errorf("failed to register metrics: %w", err)
			}
			observer = collector
		}

		reports, err := cli.Solve(cmd.Context(), cfg, logger, observer)
		if err != nil {
			return err
		}
		if err := cli.WriteReports(cmd.OutOrStdout(), reports, output); err != nil {
			return err
		}

		if metricsFile != "" {
			if err := prometheus.WriteToTextfile(metricsFile, registry); err != nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
			logger.Info("metrics written", "path", metricsFile)
		}

		for _, report := range reports {
			if !report.Found {
				return exitCode(2)
			}
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringP("strategy", "s", "astar", "Search strategy (dfs, bfs, ucs, astar)")
	solveCmd.Flags().String("heuristic", cli.HeuristicNull, "A* heuristic (null, manhattan, euclidean for mazes; table for graphs)")
	solveCmd.Flags().Int("max-expansions", 0, "Abort after expanding this many states (0 = unlimited)")
	solveCmd.Flags().Int("max-depth", 0, "Do not search deeper than this many actions (0 = unlimited)")
	solveCmd.Flags().Int("workers", 0, "Problems solved concurrently (0 = number of CPUs)")
	solveCmd.Flags().Duration("timeout", 0, "Abort the whole run after this duration (0 = none)")
	solveCmd.Flags().Bool("render", false, "Draw the solution path")
	solveCmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	solveCmd.Flags().String("metrics-file", "", "Write Prometheus metrics in text format to this file")
	rootCmd.AddCommand(solveCmd)
}
