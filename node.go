package search

import "github.com/pdrpinto/search/internal"

// Node links a state to the path that reached it.
//
// Nodes are immutable once created. A cheaper path to a state already on the
// frontier is represented by a new node, never by updating an old one.
type Node[S comparable, A any] struct {
	parent *Node[S, A]
	action A
	state  S
	cost   float64
	depth  int
}

// Root returns the node for the start of a search.
func Root[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{state: state}
}

// Child returns the node reached from n through successor.
func (n *Node[S, A]) Child(successor Successor[S, A]) *Node[S, A] {
	return &Node[S, A]{
		parent: n,
		action: successor.Action,
		state:  successor.State,
		cost:   n.cost + successor.Cost,
		depth:  n.depth + 1,
	}
}

// State returns the node's state.
func (n *Node[S, A]) State() S { return n.state }

// Cost returns the accumulated path cost from the root.
func (n *Node[S, A]) Cost() float64 { return n.cost }

// Depth returns the number of actions from the root.
func (n *Node[S, A]) Depth() int { return n.depth }

// Parent returns the generating node, or nil for a root.
func (n *Node[S, A]) Parent() *Node[S, A] { return n.parent }

// Action returns the action that produced n. ok is false for a root.
func (n *Node[S, A]) Action() (action A, ok bool) {
	return n.action, n.parent != nil
}

// Actions returns the actions from the root to n.
func (n *Node[S, A]) Actions() []A {
	actions := make([]A, 0, n.depth)
	for current := n; current.parent != nil; current = current.parent {
		actions = append(actions, current.action)
	}
	return internal.Reverse(actions)
}

// States returns the states from the root to n, both included.
func (n *Node[S, A]) States() []S {
	states := make([]S, 0, n.depth+1)
	for current := n; current != nil; current = current.parent {
		states = append(states, current.state)
	}
	return internal.Reverse(states)
}
