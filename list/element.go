package list

// Handle addresses a node of a List.
//
// The zero Handle addresses no node.
type Handle int

// IsNone reports whether h addresses no node.
func (h Handle) IsNone() bool {
	return h == 0
}

// node is a list element. Its links are handles into the owning list's arena.
type node[V any] struct {
	Value      V
	next, prev Handle
}

// step returns the neighbour of n in direction dir.
func (n *node[V]) step(dir Direction) Handle {
	switch dir {
	case Forward:
		return n.next
	case Backward:
		return n.prev
	default:
		panic("list: invalid direction")
	}
}
