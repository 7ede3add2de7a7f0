package search

import (
	"fmt"
	"slices"
	"time"
)

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot[S comparable] struct {
	Current     S
	Depth       int
	Cost        float64
	Expanded    int
	FrontierLen int
	Done        bool
	Found       bool
	Path        []S
	StepIndex   int
}

// Stepper runs a search one expansion at a time. It is the engine behind
// Solve and can drive visualisers or debugging tools directly.
//
// The observer hears SearchStarted on the first Step and SearchFinished once
// the search is done, however the Stepper is driven.
//
// A Stepper is not safe for concurrent use.
type Stepper[S comparable, A any] struct {
	problem  Problem[S, A]
	strategy Strategy
	options  Options

	frontier frontier[S, A]
	explored map[S]struct{}

	stepCount int
	expanded  int
	generated int
	done      bool
	goal      *Node[S, A]
	err       error

	started  time.Time
	finished time.Duration
}

// NewStepper prepares a search of problem using strategy. heuristic is only
// consulted by AStar; nil means NullHeuristic.
func NewStepper[S comparable, A any](
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	options ...Option,
) (*Stepper[S, A], error) {
	return newStepper(problem, strategy, heuristic, applyOptions(options))
}

func newStepper[S comparable, A any](
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	options Options,
) (*Stepper[S, A], error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	openSet, err := newFrontier(strategy, problem, heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", err, strategy)
	}

	s := &Stepper[S, A]{
		problem:  problem,
		strategy: strategy,
		options:  options,
		frontier: openSet,
		explored: make(map[S]struct{}),
	}
	s.frontier.push(Root[S, A](problem.StartState()))
	s.generated = 1
	return s, nil
}

// Strategy returns the strategy the stepper was built with.
func (s *Stepper[S, A]) Strategy() Strategy { return s.strategy }

// Done reports whether the search has finished.
func (s *Stepper[S, A]) Done() bool { return s.done }

// Step pops frontier nodes until it finds one whose state has not been
// explored, then either accepts it as the goal or expands it.
//
// Once the search is done further calls return the final snapshot and error.
func (s *Stepper[S, A]) Step() (StepSnapshot[S], error) {
	if s.done {
		return s.finalSnapshot(), s.err
	}
	s.begin()

	for {
		current, ok := s.frontier.pop()
		if !ok {
			s.finish(nil)
			return s.finalSnapshot(), nil
		}
		state := current.State()
		if _, closed := s.explored[state]; closed {
			continue
		}

		s.stepCount++
		if s.problem.IsGoal(state) {
			s.goal = current
			s.finish(nil)
			return s.finalSnapshot(), nil
		}

		if s.options.MaxExpansions > 0 && s.expanded >= s.options.MaxExpansions {
			s.finish(fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, s.expanded))
			return s.finalSnapshot(), s.err
		}

		s.explored[state] = struct{}{}
		s.expanded++
		s.options.Observer.NodeExpanded(s.strategy, current.Depth(), current.Cost())
		s.expand(current)

		return StepSnapshot[S]{
			Current:     state,
			Depth:       current.Depth(),
			Cost:        current.Cost(),
			Expanded:    s.expanded,
			FrontierLen: s.frontier.len(),
			StepIndex:   s.stepCount,
		}, nil
	}
}

func (s *Stepper[S, A]) begin() {
	if s.started.IsZero() {
		s.started = time.Now()
		s.options.Observer.SearchStarted(s.strategy)
	}
}

// finish ends the search with err and reports it to the observer.
func (s *Stepper[S, A]) finish(err error) {
	s.done = true
	s.err = err
	s.finished = time.Since(s.started)
	s.options.Observer.SearchFinished(s.strategy, s.stats(), err)
}

// Abort ends a search that has not finished on its own. Later Step calls
// return err. It does nothing once the search is done.
func (s *Stepper[S, A]) Abort(err error) {
	if s.done {
		return
	}
	s.begin()
	s.finish(err)
}

func (s *Stepper[S, A]) stats() Stats {
	duration := s.finished
	if !s.done && !s.started.IsZero() {
		duration = time.Since(s.started)
	}
	stats := Stats{
		Expanded:  s.expanded,
		Generated: s.generated,
		Duration:  duration,
	}
	if s.goal != nil {
		stats.Found = true
		stats.Cost = s.goal.Cost()
	}
	return stats
}

func (s *Stepper[S, A]) expand(current *Node[S, A]) {
	if s.options.MaxDepth > 0 && current.Depth() >= s.options.MaxDepth {
		return
	}
	successors := s.problem.Successors(current.State())
	if s.strategy == DepthFirst {
		// The first offered successor must be popped first.
		successors = slices.Clone(successors)
		slices.Reverse(successors)
	}
	for _, successor := range successors {
		if _, closed := s.explored[successor.State]; closed {
			continue
		}
		s.frontier.push(current.Child(successor))
		s.generated++
	}
}

func (s *Stepper[S, A]) finalSnapshot() StepSnapshot[S] {
	snapshot := StepSnapshot[S]{
		Expanded:    s.expanded,
		FrontierLen: s.frontier.len(),
		Done:        true,
		StepIndex:   s.stepCount,
	}
	if s.goal != nil {
		snapshot.Current = s.goal.State()
		snapshot.Depth = s.goal.Depth()
		snapshot.Cost = s.goal.Cost()
		snapshot.Found = true
		snapshot.Path = s.goal.States()
	}
	return snapshot
}

// Frontier returns the states currently waiting on the frontier. A state may
// appear more than once.
func (s *Stepper[S, A]) Frontier() []S {
	nodes := s.frontier.nodes()
	states := make([]S, 0, len(nodes))
	for _, node := range nodes {
		states = append(states, node.State())
	}
	return states
}

// Explored returns the states expanded so far, in no particular order.
func (s *Stepper[S, A]) Explored() []S {
	states := make([]S, 0, len(s.explored))
	for state := range s.explored {
		states = append(states, state)
	}
	return states
}

// Result returns the outcome so far. Before the search is done it reports
// Found false with the counters reached.
func (s *Stepper[S, A]) Result() Result[S, A] {
	result := Result[S, A]{
		Actions:   []A{},
		Expanded:  s.expanded,
		Generated: s.generated,
	}
	if s.goal != nil {
		result.Actions = s.goal.Actions()
		result.Path = s.goal.States()
		result.Cost = s.goal.Cost()
		result.Found = true
	}
	return result
}
