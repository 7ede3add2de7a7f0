package search

import "container/heap"

// PriorityQueueItem is one entry of a PriorityQueue.
// Sequence is the insertion counter used to break priority ties.
type PriorityQueueItem[T any] struct {
	Value        T
	Priority     float64
	Sequence     uint64
	IndexInQueue int
}

// priorityHeap implements heap.Interface over queue items.
type priorityHeap[T any] []*PriorityQueueItem[T]

func (queue priorityHeap[T]) Len() int { return len(queue) }

// Less orders by priority, then by insertion sequence so that equal
// priorities pop first-in-first-out.
func (queue priorityHeap[T]) Less(i, j int) bool {
	if queue[i].Priority != queue[j].Priority {
		return queue[i].Priority < queue[j].Priority
	}
	return queue[i].Sequence < queue[j].Sequence
}

func (queue priorityHeap[T]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityHeap[T]) Push(x any) {
	item := x.(*PriorityQueueItem[T])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityHeap[T]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// PriorityQueue is a min-priority queue with deterministic tie-breaking.
// The zero value is ready to use.
type PriorityQueue[T any] struct {
	items    priorityHeap[T]
	sequence uint64
}

// Push inserts value with the given priority.
func (queue *PriorityQueue[T]) Push(value T, priority float64) {
	queue.sequence++
	heap.Push(&queue.items, &PriorityQueueItem[T]{
		Value:    value,
		Priority: priority,
		Sequence: queue.sequence,
	})
}

// Pop removes the element with the lowest priority. Among equal priorities the
// earliest pushed element is returned first.
func (queue *PriorityQueue[T]) Pop() (T, float64, bool) {
	if queue.items.Len() == 0 {
		var zero T
		return zero, 0, false
	}
	item := heap.Pop(&queue.items).(*PriorityQueueItem[T])
	return item.Value, item.Priority, true
}

// Peek returns the element Pop would return without removing it.
func (queue *PriorityQueue[T]) Peek() (T, float64, bool) {
	if queue.items.Len() == 0 {
		var zero T
		return zero, 0, false
	}
	return queue.items[0].Value, queue.items[0].Priority, true
}

// Len returns the number of queued elements.
func (queue *PriorityQueue[T]) Len() int { return queue.items.Len() }

// Items returns a copy of the queued values in heap order.
func (queue *PriorityQueue[T]) Items() []T {
	values := make([]T, 0, len(queue.items))
	for _, item := range queue.items {
		values = append(values, item.Value)
	}
	return values
}
