package cyclist

// node is a single ring element. It is never exposed directly; callers hold
// an Iterator wrapping a *node.
type node[T any] struct {
	value      T
	prev, next *node[T]
}

// List is a doubly-linked ring of T. The zero value is an empty, usable
// list.
type List[T any] struct {
	head *node[T]
	size int
}

// Iterator references a single node in a List plus whether traversal has
// moved past the head at least once; the latter is what lets List.AtEnd tell
// Begin (not yet moved) from an iterator that has wrapped back to the head,
// even though both reference the same node.
type Iterator[T any] struct {
	n      *node[T]
	moved  bool
}

// Valid reports whether the iterator references a live node.
func (it Iterator[T]) Valid() bool { return it.n != nil }

// Value returns the node's current value.
func (it Iterator[T]) Value() T { return it.n.value }

// SetValue overwrites the node's value in place.
func (it Iterator[T]) SetValue(v T) { it.n.value = v }

// Next returns an iterator advanced one step clockwise (toward next).
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.next, moved: true}
}

// Prev returns an iterator moved one step counter-clockwise (toward prev).
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: it.n.prev, moved: true}
}

// Equal reports whether two iterators reference the same node.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.n == other.n }

// Len returns the number of nodes currently in the ring.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the ring has no nodes.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Begin returns an iterator at the head node, not yet "moved".
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{n: l.head} }

// End returns an iterator at the head node with moved == true. Equal compares
// nodes only, so End().Equal(Begin()) is true; use AtEnd to detect that an
// iterator produced by repeated Next() calls has wrapped back to the head.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{n: l.head, moved: true} }

// AtEnd reports whether it has completed a full traversal: it references the
// head and has moved at least once.
func (l *List[T]) AtEnd(it Iterator[T]) bool {
	return it.moved && it.n == l.head
}

func newNode[T any](v T) *node[T] {
	n := &node[T]{value: v}
	n.prev, n.next = n, n
	return n
}

func (l *List[T]) linkBefore(pos *node[T], n *node[T]) {
	n.prev = pos.prev
	n.next = pos
	pos.prev.next = n
	pos.prev = n
	l.size++
}

// PushBack inserts v immediately before the head (i.e., at the "end" of the
// ring in traversal order), without changing which node is head.
func (l *List[T]) PushBack(v T) Iterator[T] {
	n := newNode(v)
	if l.head == nil {
		l.head = n
		l.size++
		return Iterator[T]{n: n}
	}
	l.linkBefore(l.head, n)
	return Iterator[T]{n: n}
}

// PushFront inserts v immediately before the current head and makes it the
// new head, so v comes first in traversal order.
func (l *List[T]) PushFront(v T) Iterator[T] {
	n := newNode(v)
	if l.head == nil {
		l.head = n
		l.size++
		return Iterator[T]{n: n}
	}
	l.linkBefore(l.head, n)
	l.head = n
	return Iterator[T]{n: n}
}

// Insert inserts v immediately before pos, returning an iterator to the new
// node. pos must reference a node of this list.
func (l *List[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	if l.head == nil {
		return l.PushBack(v)
	}
	n := newNode(v)
	l.linkBefore(pos.n, n)
	return Iterator[T]{n: n}
}

// Front returns the value at the head.
func (l *List[T]) Front() T { return l.head.value }

// Back returns the value immediately before the head.
func (l *List[T]) Back() T { return l.head.prev.value }

// ResetHead makes the node referenced by it the new head of the ring. No
// node pointers change — only the list's root reference.
func (l *List[T]) ResetHead(it Iterator[T]) {
	l.head = it.n
}

// Remove unlinks the single node referenced by it from the ring. it must not
// be End()/the sentinel returned after a full traversal without a live node.
func (l *List[T]) Remove(it Iterator[T]) {
	n := it.n
	if n.next == n {
		l.head = nil
		l.size = 0
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	if l.head == n {
		l.head = n.next
	}
	l.size--
}

// ToSlice returns the ring's values in traversal order starting at the head.
func (l *List[T]) ToSlice() []T {
	if l.head == nil {
		return nil
	}
	out := make([]T, 0, l.size)
	for cur := l.head; ; {
		out = append(out, cur.value)
		cur = cur.next
		if cur == l.head {
			break
		}
	}
	return out
}

// Splice moves the open arc (first, last) — exclusive of both endpoints —
// from other into the receiver, linked immediately before pos. Two fresh
// nodes carrying copies of first's and last's values bracket the moved arc
// in the destination; other's ring is re-closed directly from first to last,
// skipping the donated arc entirely.
//
// Precondition: first and last reference nodes of other, and no live
// iterator outside this call references a node strictly inside the arc
// (first, last) — such an iterator is invalidated by the move and using it
// afterward is undefined behavior, per spec.md §4.1.
//
// Returns iterators, in the destination list l, to the two newly allocated
// endpoint-copy nodes (in order: copy-of-first, copy-of-last).
func (l *List[T]) Splice(pos Iterator[T], other *List[T], first, last Iterator[T]) (Iterator[T], Iterator[T]) {
	// Count nodes strictly between first and last (exclusive) in other, and
	// detach that arc by relinking other directly from first to last.
	var moved int
	for cur := first.n.next; cur != last.n; cur = cur.next {
		moved++
	}

	arcStart := first.n.next
	arcEnd := last.n.prev

	// Re-close the donor: first -> last directly, skipping the arc.
	first.n.next = last.n
	last.n.prev = first.n
	other.size -= moved
	if other.size < 1 {
		other.size = 0
	}

	// Allocate the two bracketing copies in the destination.
	firstCopy := newNode(first.n.value)
	lastCopy := newNode(last.n.value)

	// destHead is the node the new arc is inserted before; when l is empty
	// there is no existing node to anchor on, so the new chain becomes the
	// whole ring and firstCopy is installed as head below.
	destEmpty := l.head == nil

	if moved == 0 {
		// Degenerate: nothing between first and last; still insert the two
		// endpoint copies adjacent to each other.
		if destEmpty {
			l.head = firstCopy
			l.size++
			l.linkBefore(firstCopy, lastCopy)
		} else {
			l.linkBefore(pos.n, firstCopy)
			l.linkBefore(pos.n, lastCopy)
		}
		return Iterator[T]{n: firstCopy}, Iterator[T]{n: lastCopy}
	}

	// Wire firstCopy -> arcStart .. arcEnd -> lastCopy as one chain.
	firstCopy.next = arcStart
	arcStart.prev = firstCopy
	arcEnd.next = lastCopy
	lastCopy.prev = arcEnd

	if destEmpty {
		lastCopy.next = firstCopy
		firstCopy.prev = lastCopy
		l.head = firstCopy
		l.size = moved + 2
	} else {
		lastCopy.next = pos.n
		firstCopy.prev = pos.n.prev
		pos.n.prev.next = firstCopy
		pos.n.prev = lastCopy
		l.size += moved + 2
	}

	return Iterator[T]{n: firstCopy}, Iterator[T]{n: lastCopy}
}
