package search

// Queue is a first-in-first-out container. The zero value is ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// Push appends value to the back of the queue.
func (queue *Queue[T]) Push(value T) {
	queue.items = append(queue.items, value)
}

// Pop removes the value at the front of the queue.
func (queue *Queue[T]) Pop() (T, bool) {
	var zero T
	if queue.head >= len(queue.items) {
		return zero, false
	}
	value := queue.items[queue.head]
	queue.items[queue.head] = zero
	queue.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if queue.head > 32 && queue.head*2 >= len(queue.items) {
		remaining := copy(queue.items, queue.items[queue.head:])
		clear(queue.items[remaining:])
		queue.items = queue.items[:remaining]
		queue.head = 0
	}
	return value, true
}

// Len returns the number of queued values.
func (queue *Queue[T]) Len() int { return len(queue.items) - queue.head }

// Items returns a copy of the queued values, front first.
func (queue *Queue[T]) Items() []T {
	values := make([]T, queue.Len())
	copy(values, queue.items[queue.head:])
	return values
}

// Stack is a last-in-first-out container. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// Push places value on top of the stack.
func (stack *Stack[T]) Push(value T) {
	stack.items = append(stack.items, value)
}

// Pop removes the value on top of the stack.
func (stack *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(stack.items)
	if n == 0 {
		return zero, false
	}
	value := stack.items[n-1]
	stack.items[n-1] = zero
	stack.items = stack.items[:n-1]
	return value, true
}

// Len returns the number of stacked values.
func (stack *Stack[T]) Len() int { return len(stack.items) }

// Items returns a copy of the stacked values, bottom first.
func (stack *Stack[T]) Items() []T {
	values := make([]T, len(stack.items))
	copy(values, stack.items)
	return values
}
