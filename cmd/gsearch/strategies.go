package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/search"
)

var strategyDescriptions = map[search.Strategy]string{
	search.DepthFirst:   "depth-first; some valid path",
	search.BreadthFirst: "breadth-first; fewest actions",
	search.UniformCost:  "uniform-cost; cheapest path",
	search.AStar:        "A*; cheapest path with an admissible heuristic",
}

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available search strategies",
	Run: func(cmd *cobra.Command, args []string) {
		for _, strategy := range search.Strategies {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", strategy, strategyDescriptions[strategy])
		}
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
