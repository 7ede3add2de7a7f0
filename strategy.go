package search

import (
	"fmt"
	"strings"
)

// Strategy selects the frontier discipline of a search.
type Strategy int

const (
	// DepthFirst expands the most recently discovered node first.
	DepthFirst Strategy = iota + 1
	// BreadthFirst expands the shallowest node first.
	BreadthFirst
	// UniformCost expands the node with the lowest accumulated cost first.
	UniformCost
	// AStar expands the node with the lowest accumulated cost plus heuristic first.
	AStar
)

// Strategies lists every supported strategy in declaration order.
var Strategies = []Strategy{DepthFirst, BreadthFirst, UniformCost, AStar}

var strategyNames = map[Strategy]string{
	DepthFirst:   "dfs",
	BreadthFirst: "bfs",
	UniformCost:  "ucs",
	AStar:        "astar",
}

var strategyAliases = map[string]Strategy{
	"dfs":                DepthFirst,
	"depth-first":        DepthFirst,
	"depthfirstsearch":   DepthFirst,
	"bfs":                BreadthFirst,
	"breadth-first":      BreadthFirst,
	"breadthfirstsearch": BreadthFirst,
	"ucs":                UniformCost,
	"uniform-cost":       UniformCost,
	"uniformcostsearch":  UniformCost,
	"astar":              AStar,
	"a*":                 AStar,
	"a-star":             AStar,
	"astarsearch":        AStar,
}

// String returns the short name of the strategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Valid reports whether s is one of the supported strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy parses a strategy name such as "bfs", "uniform-cost" or "a*".
func ParseStrategy(name string) (Strategy, error) {
	s, ok := strategyAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
