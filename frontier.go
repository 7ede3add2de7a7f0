package search

// frontier is the pending-node container driven by the search loop.
// Nodes for the same state may coexist; the explored set filters them on pop.
type frontier[S comparable, A any] interface {
	push(node *Node[S, A])
	pop() (*Node[S, A], bool)
	len() int
	nodes() []*Node[S, A]
}

type stackFrontier[S comparable, A any] struct {
	stack Stack[*Node[S, A]]
}

func (f *stackFrontier[S, A]) push(node *Node[S, A])    { f.stack.Push(node) }
func (f *stackFrontier[S, A]) pop() (*Node[S, A], bool) { return f.stack.Pop() }
func (f *stackFrontier[S, A]) len() int                 { return f.stack.Len() }
func (f *stackFrontier[S, A]) nodes() []*Node[S, A]     { return f.stack.Items() }

type queueFrontier[S comparable, A any] struct {
	queue Queue[*Node[S, A]]
}

func (f *queueFrontier[S, A]) push(node *Node[S, A])    { f.queue.Push(node) }
func (f *queueFrontier[S, A]) pop() (*Node[S, A], bool) { return f.queue.Pop() }
func (f *queueFrontier[S, A]) len() int                 { return f.queue.Len() }
func (f *queueFrontier[S, A]) nodes() []*Node[S, A]     { return f.queue.Items() }

// priorityFrontier orders nodes by priority(node), lowest first.
type priorityFrontier[S comparable, A any] struct {
	queue    PriorityQueue[*Node[S, A]]
	priority func(node *Node[S, A]) float64
}

func (f *priorityFrontier[S, A]) push(node *Node[S, A]) {
	f.queue.Push(node, f.priority(node))
}

func (f *priorityFrontier[S, A]) pop() (*Node[S, A], bool) {
	node, _, ok := f.queue.Pop()
	return node, ok
}

func (f *priorityFrontier[S, A]) len() int             { return f.queue.Len() }
func (f *priorityFrontier[S, A]) nodes() []*Node[S, A] { return f.queue.Items() }

func newFrontier[S comparable, A any](
	strategy Strategy,
	problem Problem[S, A],
	heuristic Heuristic[S, A],
) (frontier[S, A], error) {
	switch strategy {
	case DepthFirst:
		return &stackFrontier[S, A]{}, nil
	case BreadthFirst:
		return &queueFrontier[S, A]{}, nil
	case UniformCost:
		return &priorityFrontier[S, A]{
			priority: func(node *Node[S, A]) float64 { return node.Cost() },
		}, nil
	case AStar:
		return &priorityFrontier[S, A]{
			priority: func(node *Node[S, A]) float64 {
				return node.Cost() + heuristic(node.State(), problem)
			},
		}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}
