package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SolveAll solves independent problems concurrently with the same strategy
// and heuristic. At most WithWorkers searches run at a time; each search is
// itself single-threaded.
//
// Results are returned in problem order. The first failing search cancels the
// others and its error is returned.
func SolveAll[S comparable, A any](
	ctx context.Context,
	strategy Strategy,
	problems []Problem[S, A],
	heuristic Heuristic[S, A],
	options ...Option,
) ([]Result[S, A], error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
	searchOptions := applyOptions(options)
	results := make([]Result[S, A], len(problems))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, problem := range problems {
		group.Go(func() error {
			result, err := Solve(groupCtx, strategy, problem, heuristic, options...)
			results[i] = result
			if err != nil {
				return fmt.Errorf("problem %d: %w", i, err)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
