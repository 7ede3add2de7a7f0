package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_PathReconstruction(t *testing.T) {
	root := Root[string, string]("A")
	b := root.Child(Successor[string, string]{State: "B", Action: "A->B", Cost: 1})
	d := b.Child(Successor[string, string]{State: "D", Action: "B->D", Cost: 2.5})

	assert.Equal(t, "D", d.State())
	assert.Equal(t, 3.5, d.Cost())
	assert.Equal(t, 2, d.Depth())
	assert.Same(t, b, d.Parent())
	assert.Equal(t, []string{"A->B", "B->D"}, d.Actions())
	assert.Equal(t, []string{"A", "B", "D"}, d.States())

	action, ok := d.Action()
	assert.True(t, ok)
	assert.Equal(t, "B->D", action)
}

func TestNode_Root(t *testing.T) {
	root := Root[int, string](7)

	_, ok := root.Action()
	assert.False(t, ok)
	assert.Nil(t, root.Parent())
	assert.Zero(t, root.Cost())
	assert.Empty(t, root.Actions())
	assert.NotNil(t, root.Actions())
	assert.Equal(t, []int{7}, root.States())
}

func TestNode_ChildDoesNotChangeParent(t *testing.T) {
	root := Root[string, string]("A")
	first := root.Child(Successor[string, string]{State: "B", Action: "x", Cost: 5})
	second := root.Child(Successor[string, string]{State: "B", Action: "y", Cost: 1})

	assert.Equal(t, 5.0, first.Cost())
	assert.Equal(t, 1.0, second.Cost())
	assert.Equal(t, []string{"x"}, first.Actions())
	assert.Equal(t, []string{"y"}, second.Actions())
	assert.Zero(t, root.Cost())
}
