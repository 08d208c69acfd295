package list

import "iter"

// Direction selects which link a traversal follows.
type Direction int

// Traversal directions.
const (
	// Forward follows next links, from head to tail.
	Forward Direction = iota
	// Backward follows prev links, from tail to head.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "invalid"
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Traverse returns the values of the elements starting at start and following
// links in direction dir until the end of the list.
// If start is the zero Handle, the sequence is empty.
//
// The sequence may be ranged over any number of times.
// The loop body must not change l.
func (l *List[V]) Traverse(start Handle, dir Direction) iter.Seq[V] {
	nodes := l.Nodes(start, dir)

	return func(yield func(V) bool) {
		for _, v := range nodes {
			if !yield(v) {
				return
			}
		}
	}
}

// Nodes is like Traverse but yields each element's handle alongside its value.
func (l *List[V]) Nodes(start Handle, dir Direction) iter.Seq2[Handle, V] {
	if dir != Forward && dir != Backward {
		panic("list: invalid direction")
	}
	if !start.IsNone() {
		l.at(start)
	}

	return func(yield func(Handle, V) bool) {
		for h := start; !h.IsNone(); h = l.at(h).step(dir) {
			if !yield(h, l.at(h).Value) {
				return
			}
		}
	}
}

// All returns the values from front to back.
func (l *List[V]) All() iter.Seq[V] {
	return l.Traverse(l.head, Forward)
}

// Backward returns the values from back to front.
func (l *List[V]) Backward() iter.Seq[V] {
	return l.Traverse(l.tail, Backward)
}

// Collect appends the values from seq to a new list.
func Collect[V any](seq iter.Seq[V], opts ...Option) *List[V] {
	l := New[V](opts...)
	for v := range seq {
		l.Append(v)
	}
	return l
}
