package search

import "errors"

// Sentinel errors for search operations.
var (
	// ErrNilProblem is returned when a search is started without a problem.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrUnknownStrategy is returned for an unrecognised strategy value or name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded before a
	// goal is reached.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrIllegalAction is wrapped by Problem.CostOfActions implementations when
	// an action cannot be replayed.
	ErrIllegalAction = errors.New("search: illegal action")
)
