/*
Package list implements an append-only doubly linked list.

Nodes are stored in an arena owned by the list and linked by handles,
so a node never owns its neighbours.
*/
package list

// State is the macro state of a list.
type State int

// List states. A list starts Empty and becomes NonEmpty on the first Append.
const (
	Empty State = iota
	NonEmpty
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case NonEmpty:
		return "non-empty"
	default:
		return "invalid"
	}
}

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	nodes []node[V]
	head  Handle
	tail  Handle
}

// New creates an empty list.
func New[V any](opts ...Option) *List[V] {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &List[V]{
		nodes: make([]node[V], 0, o.capacity),
	}
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return len(l.nodes)
}

// State returns the macro state of the list.
func (l *List[V]) State() State {
	if l.head.IsNone() {
		return Empty
	}
	return NonEmpty
}

// Front returns the first element of the list or the zero Handle.
func (l *List[V]) Front() Handle {
	return l.head
}

// Back returns the last element of the list or the zero Handle.
func (l *List[V]) Back() Handle {
	return l.tail
}

// Append inserts a value at the back of list l and returns the new element.
func (l *List[V]) Append(value V) Handle {
	l.nodes = append(l.nodes, node[V]{Value: value})
	h := Handle(len(l.nodes))

	if l.tail.IsNone() {
		l.head = h
	} else {
		l.link(l.tail, h)
	}
	l.tail = h

	return h
}

// Value returns the value stored in element h.
func (l *List[V]) Value(h Handle) V {
	return l.at(h).Value
}

// Next returns the element after h or the zero Handle if h is the last element.
func (l *List[V]) Next(h Handle) Handle {
	return l.at(h).next
}

// Prev returns the element before h or the zero Handle if h is the first element.
func (l *List[V]) Prev(h Handle) Handle {
	return l.at(h).prev
}

// link inserts s after e. e must be the tail.
func (l *List[V]) link(e, s Handle) {
	l.at(e).next = s
	l.at(s).prev = e
}

func (l *List[V]) at(h Handle) *node[V] {
	if h <= 0 || int(h) > len(l.nodes) {
		panic("list: invalid element")
	}
	return &l.nodes[h-1]
}
