package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	var queue Queue[int]
	for i := 0; i < 1000; i++ {
		queue.Push(i)
		if i%3 == 0 {
			// Interleave pops so the backing array is compacted along the way.
			_, ok := queue.Pop()
			require.True(t, ok)
		}
	}

	assert.Equal(t, 1000-334, queue.Len())
	items := queue.Items()
	require.Len(t, items, queue.Len())

	previous := -1
	for queue.Len() > 0 {
		value, ok := queue.Pop()
		require.True(t, ok)
		assert.Greater(t, value, previous)
		previous = value
	}
	assert.Equal(t, 999, previous)

	_, ok := queue.Pop()
	assert.False(t, ok)
}

func TestQueue_ItemsFrontFirst(t *testing.T) {
	var queue Queue[string]
	queue.Push("a")
	queue.Push("b")
	queue.Push("c")
	_, _ = queue.Pop()
	assert.Equal(t, []string{"b", "c"}, queue.Items())
}

func TestStack_LIFO(t *testing.T) {
	var stack Stack[string]
	_, ok := stack.Pop()
	assert.False(t, ok)

	stack.Push("a")
	stack.Push("b")
	stack.Push("c")
	assert.Equal(t, []string{"a", "b", "c"}, stack.Items())
	assert.Equal(t, 3, stack.Len())

	var got []string
	for stack.Len() > 0 {
		value, _ := stack.Pop()
		got = append(got, value)
	}
	assert.Equal(t, []string{"c", "b", "a"}, got)
}
