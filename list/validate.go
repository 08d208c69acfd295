package list

import (
	"errors"
	"fmt"
)

// ErrCorrupt indicates the list links do not form a valid chain.
var ErrCorrupt = errors.New("list: corrupt links")

// Validate checks that head and tail agree on emptiness, that every next link
// is mirrored by a prev link and that both directions visit every element once.
func (l *List[V]) Validate() error {
	if l.head.IsNone() != l.tail.IsNone() {
		return fmt.Errorf("%w: head %d and tail %d disagree on emptiness", ErrCorrupt, l.head, l.tail)
	}

	if l.head.IsNone() {
		if len(l.nodes) > 0 {
			return fmt.Errorf("%w: empty list holds %d elements", ErrCorrupt, len(l.nodes))
		}
		return nil
	}

	if !l.valid(l.head) || !l.valid(l.tail) {
		return fmt.Errorf("%w: head %d or tail %d out of range", ErrCorrupt, l.head, l.tail)
	}

	if p := l.nodes[l.head-1].prev; !p.IsNone() {
		return fmt.Errorf("%w: head %d has prev %d", ErrCorrupt, l.head, p)
	}

	if n := l.nodes[l.tail-1].next; !n.IsNone() {
		return fmt.Errorf("%w: tail %d has next %d", ErrCorrupt, l.tail, n)
	}

	if err := l.walk(l.head, l.tail, Forward); err != nil {
		return err
	}

	return l.walk(l.tail, l.head, Backward)
}

// walk follows links from one end and expects to reach the other in Len()-1 steps.
func (l *List[V]) walk(from, to Handle, dir Direction) error {
	steps := 0
	for h := from; h != to; steps++ {
		if steps >= len(l.nodes)-1 {
			return fmt.Errorf("%w: %s walk from %d does not reach %d in %d steps", ErrCorrupt, dir, from, to, len(l.nodes)-1)
		}

		s := l.nodes[h-1].step(dir)
		if !l.valid(s) {
			return fmt.Errorf("%w: %s link of %d is %d", ErrCorrupt, dir, h, s)
		}

		if back := l.nodes[s-1].step(dir.Reverse()); back != h {
			return fmt.Errorf("%w: %s link %d -> %d is mirrored by %d", ErrCorrupt, dir, h, s, back)
		}

		h = s
	}

	if steps != len(l.nodes)-1 {
		return fmt.Errorf("%w: %s walk took %d steps for %d elements", ErrCorrupt, dir, steps, len(l.nodes))
	}

	return nil
}

func (l *List[V]) valid(h Handle) bool {
	return h > 0 && int(h) <= len(l.nodes)
}
