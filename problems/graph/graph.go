// Package graph provides a weighted directed graph search problem.
//
// States and actions are strings. An edge's action is its label, or
// "from->to" when the edge has no label.
package graph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pdrpinto/search"
)

// Definition errors.
var (
	ErrUnknownNode     = errors.New("graph: unknown node")
	ErrDuplicateAction = errors.New("graph: duplicate action")
)

// Edge is a directed, weighted transition.
type Edge struct {
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
	Cost  float64 `yaml:"cost"`
	Label string  `yaml:"label,omitempty"`
}

// Action returns the action label used for this edge.
func (e Edge) Action() string {
	if e.Label != "" {
		return e.Label
	}
	return e.From + "->" + e.To
}

// Graph implements search.Problem[string, string].
//
// Graph counts Successors calls per state so tests can check that no state is
// expanded twice. The counters are safe for concurrent use; the topology must
// not change while a search runs.
type Graph struct {
	start     string
	goals     map[string]bool
	edges     map[string][]Edge
	estimates map[string]float64

	mu         sync.Mutex
	expansions map[string]int
}

// New returns an empty graph with the given start and goal states.
func New(start string, goals ...string) *Graph {
	g := &Graph{
		start:      start,
		goals:      make(map[string]bool, len(goals)),
		edges:      make(map[string][]Edge),
		estimates:  make(map[string]float64),
		expansions: make(map[string]int),
	}
	for _, goal := range goals {
		g.goals[goal] = true
	}
	return g
}

// AddEdge adds a directed edge. Successors are offered in insertion order.
func (g *Graph) AddEdge(from, to string, cost float64) *Graph {
	return g.AddLabeledEdge(Edge{From: from, To: to, Cost: cost})
}

// AddLabeledEdge adds edge as is. Actions identify edges, so it panics when
// edge.From already has an edge with the same action. Parallel edges need
// distinct labels.
func (g *Graph) AddLabeledEdge(edge Edge) *Graph {
	if _, ok := g.edgeFor(edge.From, edge.Action()); ok {
		panic(fmt.Sprintf("%v: %q out of %q", ErrDuplicateAction, edge.Action(), edge.From))
	}
	g.edges[edge.From] = append(g.edges[edge.From], edge)
	return g
}

// SetEstimate records the heuristic estimate for state used by Heuristic.
func (g *Graph) SetEstimate(state string, estimate float64) *Graph {
	g.estimates[state] = estimate
	return g
}

// StartState implements search.Problem.
func (g *Graph) StartState() string { return g.start }

// IsGoal implements search.Problem.
func (g *Graph) IsGoal(state string) bool { return g.goals[state] }

// Successors implements search.Problem.
func (g *Graph) Successors(state string) []search.Successor[string, string] {
	g.mu.Lock()
	g.expansions[state]++
	g.mu.Unlock()

	edges := g.edges[state]
	successors := make([]search.Successor[string, string], 0, len(edges))
	for _, edge := range edges {
		successors = append(successors, search.Successor[string, string]{
			State:  edge.To,
			Action: edge.Action(),
			Cost:   edge.Cost,
		})
	}
	return successors
}

// CostOfActions replays actions from the start state.
func (g *Graph) CostOfActions(actions []string) (float64, error) {
	state, total := g.start, 0.0
	for i, action := range actions {
		edge, ok := g.edgeFor(state, action)
		if !ok {
			return 0, fmt.Errorf("action %d %q from %q: %w", i, action, state, search.ErrIllegalAction)
		}
		total += edge.Cost
		state = edge.To
	}
	return total, nil
}

// Replay returns the state reached by applying actions from the start state.
func (g *Graph) Replay(actions []string) (string, error) {
	state := g.start
	for i, action := range actions {
		edge, ok := g.edgeFor(state, action)
		if !ok {
			return "", fmt.Errorf("action %d %q from %q: %w", i, action, state, search.ErrIllegalAction)
		}
		state = edge.To
	}
	return state, nil
}

func (g *Graph) edgeFor(state, action string) (Edge, bool) {
	for _, edge := range g.edges[state] {
		if edge.Action() == action {
			return edge, true
		}
	}
	return Edge{}, false
}

// Heuristic returns the estimate table as a search heuristic. States without
// an estimate score zero.
func (g *Graph) Heuristic() search.Heuristic[string, string] {
	return func(state string, _ search.Problem[string, string]) float64 {
		return g.estimates[state]
	}
}

// Expansions returns how many times Successors was called for each state.
func (g *Graph) Expansions() map[string]int {
	g.mu.Lock()
	defer g.mu.Unlock()
	counts := make(map[string]int, len(g.expansions))
	for state, n := range g.expansions {
		counts[state] = n
	}
	return counts
}

// ResetExpansions clears the Successors call counters.
func (g *Graph) ResetExpansions() {
	g.mu.Lock()
	defer g.mu.Unlock()
	clear(g.expansions)
}

var _ search.Problem[string, string] = (*Graph)(nil)
