package search

// Successor is a one-step transition offered by a Problem.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is the contract a search domain implements.
//
// S must be comparable so it can key the explored set. A is opaque to the
// search and only replayed back in the result.
type Problem[S comparable, A any] interface {
	// StartState returns the initial state.
	StartState() S

	// IsGoal reports whether state satisfies the goal. Several states may.
	IsGoal(state S) bool

	// Successors returns every legal transition out of state. The returned
	// order is the order in which successors are offered to the frontier.
	// Step costs are expected to be non-negative.
	Successors(state S) []Successor[S, A]

	// CostOfActions returns the total cost of replaying actions from the
	// start state. Illegal sequences yield an error wrapping ErrIllegalAction.
	CostOfActions(actions []A) (float64, error)
}

// Heuristic estimates the remaining cost from state to the nearest goal.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic is the trivial heuristic. With it A* behaves like uniform-cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 { return 0 }
