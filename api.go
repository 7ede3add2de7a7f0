package search

import (
	"context"
	"fmt"
)

// contextCheckInterval is how many steps run between context checks.
const contextCheckInterval = 64

// Result contains the outcome of a search.
//
// Found distinguishes a start state that is already a goal (Found true, no
// actions) from an exhausted frontier (Found false, no actions).
type Result[S comparable, A any] struct {
	Actions   []A
	Path      []S
	Cost      float64
	Expanded  int
	Generated int
	Found     bool
}

// DepthFirstSearch searches the deepest nodes first. The returned path is
// valid but neither shortest nor cheapest.
func DepthFirstSearch[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	options ...Option,
) (Result[S, A], error) {
	return Solve(ctx, DepthFirst, problem, nil, options...)
}

// BreadthFirstSearch searches the shallowest nodes first. The returned path
// has the fewest actions.
func BreadthFirstSearch[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	options ...Option,
) (Result[S, A], error) {
	return Solve(ctx, BreadthFirst, problem, nil, options...)
}

// UniformCostSearch searches the node of least accumulated cost first. With
// non-negative step costs the returned path is the cheapest.
func UniformCostSearch[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	options ...Option,
) (Result[S, A], error) {
	return Solve(ctx, UniformCost, problem, nil, options...)
}

// AStarSearch searches the node with the lowest accumulated cost plus
// heuristic estimate first. The result is cheapest when heuristic is
// admissible. A nil heuristic means NullHeuristic.
func AStarSearch[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	heuristic Heuristic[S, A],
	options ...Option,
) (Result[S, A], error) {
	return Solve(ctx, AStar, problem, heuristic, options...)
}

// Solve runs strategy on problem until a goal is popped or the frontier is
// exhausted. An exhausted frontier is not an error.
//
// Search over an infinite state space with no reachable goal does not
// terminate unless the caller bounds it with a context deadline,
// WithMaxExpansions or WithMaxDepth.
func Solve[S comparable, A any](
	ctx context.Context,
	strategy Strategy,
	problem Problem[S, A],
	heuristic Heuristic[S, A],
	options ...Option,
) (Result[S, A], error) {
	searchOptions := applyOptions(options)
	stepper, err := newStepper(problem, strategy, heuristic, searchOptions)
	if err != nil {
		return Result[S, A]{Actions: []A{}}, err
	}

	ctx, span := startSearchSpan(ctx, strategy)
	defer span.End()

	logger := searchOptions.Logger.With("strategy", strategy.String())
	logger.DebugContext(ctx, "search started")

	err = run(ctx, stepper)
	result := stepper.Result()
	stats := stepper.stats()

	recordSearchMetrics(ctx, strategy, stats, err)
	setSearchSpanResult(span, stats, err)

	if err != nil {
		logger.DebugContext(ctx, "search aborted",
			"expanded", stats.Expanded,
			"duration", stats.Duration,
			"error", err,
		)
		return result, err
	}
	logger.DebugContext(ctx, "search finished",
		"found", stats.Found,
		"cost", stats.Cost,
		"actions", len(result.Actions),
		"expanded", stats.Expanded,
		"generated", stats.Generated,
		"duration", stats.Duration,
	)
	return result, nil
}

func run[S comparable, A any](ctx context.Context, stepper *Stepper[S, A]) error {
	for step := 0; ; step++ {
		if step%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				err = fmt.Errorf("search cancelled after %d expansions: %w", stepper.expanded, err)
				stepper.Abort(err)
				return err
			}
		}
		snapshot, err := stepper.Step()
		if err != nil {
			return err
		}
		if snapshot.Done {
			return nil
		}
	}
}
