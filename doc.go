// Package search provides generic graph search over an abstract Problem.
//
// Four interchangeable strategies share one graph-search loop and differ only
// in frontier discipline:
//
//   - DepthFirstSearch: LIFO stack, returns some valid path.
//   - BreadthFirstSearch: FIFO queue, returns a path with the fewest actions.
//   - UniformCostSearch: priority queue on accumulated cost, returns a cheapest path.
//   - AStarSearch: priority queue on cost plus heuristic, cheapest when the
//     heuristic is admissible.
//
// Each state is expanded at most once per search. Goal tests happen when a
// node is popped, and ties in the priority queue pop in insertion order so
// results are reproducible.
//
// Stepper runs the same loop one expansion at a time to drive UIs or
// debugging tools, and SolveAll solves many problems concurrently.
package search
