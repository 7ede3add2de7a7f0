package graph

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of a graph problem.
//
//	start: A
//	goals: [D]
//	edges:
//	  - {from: A, to: B, cost: 1}
//	heuristic:
//	  A: 2
type Definition struct {
	Start     string             `yaml:"start"`
	Goals     []string           `yaml:"goals"`
	Edges     []Edge             `yaml:"edges"`
	Heuristic map[string]float64 `yaml:"heuristic,omitempty"`
}

// Validate checks that the definition describes a usable problem.
func (d Definition) Validate() error {
	var errs []error
	if d.Start == "" {
		errs = append(errs, errors.New("graph: start is required"))
	}
	if len(d.Goals) == 0 {
		errs = append(errs, errors.New("graph: at least one goal is required"))
	}
	type outgoing struct{ from, action string }
	seen := make(map[outgoing]int, len(d.Edges))
	for i, edge := range d.Edges {
		key := outgoing{edge.From, edge.Action()}
		if first, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("edge %d repeats action %q of edge %d out of %q: %w",
				i, edge.Action(), first, edge.From, ErrDuplicateAction))
		} else {
			seen[key] = i
		}
		if edge.From == "" || edge.To == "" {
			errs = append(errs, fmt.Errorf("graph: edge %d needs from and to", i))
		}
		if edge.Cost < 0 {
			errs = append(errs, fmt.Errorf("graph: edge %d (%s) has negative cost %v", i, edge.Action(), edge.Cost))
		}
	}
	known := map[string]bool{d.Start: true}
	for _, edge := range d.Edges {
		known[edge.From] = true
		known[edge.To] = true
	}
	for state := range d.Heuristic {
		if !known[state] {
			errs = append(errs, fmt.Errorf("heuristic entry %q: %w", state, ErrUnknownNode))
		}
	}
	return errors.Join(errs...)
}

// Build converts the definition into a Graph.
func (d Definition) Build() (*Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := New(d.Start, d.Goals...)
	for _, edge := range d.Edges {
		g.AddLabeledEdge(edge)
	}
	for state, estimate := range d.Heuristic {
		g.SetEstimate(state, estimate)
	}
	return g, nil
}

// Decode reads a YAML definition from r and builds the graph.
func Decode(r io.Reader) (*Graph, error) {
	var def Definition
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse graph definition: %w", err)
	}
	return def.Build()
}

// Load reads a YAML definition from path.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph definition: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
