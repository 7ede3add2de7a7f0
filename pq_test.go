package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_PopsLowestPriorityFirst(t *testing.T) {
	var queue PriorityQueue[string]
	queue.Push("c", 3)
	queue.Push("a", 1)
	queue.Push("d", 4)
	queue.Push("b", 2)

	var got []string
	for queue.Len() > 0 {
		value, _, ok := queue.Pop()
		require.True(t, ok)
		got = append(got, value)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestPriorityQueue_TiesPopInInsertionOrder(t *testing.T) {
	var queue PriorityQueue[int]
	for i := 0; i < 100; i++ {
		queue.Push(i, float64(i%3))
	}

	previousPriority, previousValue := -1.0, -1
	for queue.Len() > 0 {
		value, priority, ok := queue.Pop()
		require.True(t, ok)
		if priority == previousPriority {
			assert.Greater(t, value, previousValue, "equal priorities must pop FIFO")
		} else {
			assert.Greater(t, priority, previousPriority)
		}
		previousPriority, previousValue = priority, value
	}
}

func TestPriorityQueue_InterleavedPushPop(t *testing.T) {
	var queue PriorityQueue[string]
	queue.Push("first", 1)
	queue.Push("second", 1)

	value, _, _ := queue.Pop()
	assert.Equal(t, "first", value)

	queue.Push("third", 1)
	queue.Push("cheap", 0)

	peeked, priority, ok := queue.Peek()
	require.True(t, ok)
	assert.Equal(t, "cheap", peeked)
	assert.Equal(t, 0.0, priority)
	assert.Equal(t, 3, queue.Len())

	var got []string
	for queue.Len() > 0 {
		value, _, _ := queue.Pop()
		got = append(got, value)
	}
	assert.Equal(t, []string{"cheap", "second", "third"}, got)
}

func TestPriorityQueue_Empty(t *testing.T) {
	var queue PriorityQueue[int]
	_, _, ok := queue.Pop()
	assert.False(t, ok)
	_, _, ok = queue.Peek()
	assert.False(t, ok)
	assert.Empty(t, queue.Items())
}

func TestPriorityQueue_Items(t *testing.T) {
	var queue PriorityQueue[int]
	queue.Push(2, 2)
	queue.Push(1, 1)
	assert.ElementsMatch(t, []int{1, 2}, queue.Items())
	assert.Equal(t, 2, queue.Len())
}
