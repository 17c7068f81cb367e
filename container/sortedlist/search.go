package sortedlist

// FindBefore returns the node holding elem if it is present in the list.
// Otherwise it returns the node holding the greatest value less than elem, or
// nil if elem is less than every value in the list.
//
// Complexity: O(n)
func (l *List[T]) FindBefore(elem T) *Node[T] {
	l.stats.Lookups++
	head := l.Front()
	if head == nil || l.cmp(elem, head.value) < 0 {
		return nil
	}
	return l.walkForward(head, elem)
}

// FindBeforeHint is like FindBefore but starts searching from hint, walking
// forward or backward depending on how the value of hint compares to elem.
// A nil hint is the same as calling FindBefore.
//
// The result never depends on the hint.
//
// Complexity: O(distance between hint and elem)
func (l *List[T]) FindBeforeHint(elem T, hint *Node[T]) *Node[T] {
	if hint == nil {
		return l.FindBefore(elem)
	}
	l.check(hint)
	l.stats.Lookups++

	switch c := l.cmp(hint.value, elem); {
	case c == 0:
		return hint
	case l.cmp(elem, l.Front().value) < 0:
		return nil
	case l.cmp(elem, l.Back().value) >= 0:
		return l.Back()
	case c < 0:
		return l.walkForward(hint, elem)
	default:
		return l.walkBackward(hint, elem)
	}
}

// Find returns the node holding elem, or nil if elem is not in the list.
//
// Complexity: O(n)
func (l *List[T]) Find(elem T) *Node[T] {
	return l.exact(l.FindBefore(elem), elem)
}

// FindHint is like Find but starts searching from hint. A nil hint is the same
// as calling Find.
//
// Complexity: O(distance between hint and elem)
func (l *List[T]) FindHint(elem T, hint *Node[T]) *Node[T] {
	return l.exact(l.FindBeforeHint(elem, hint), elem)
}

// Contains returns true if at least one occurrence of elem is in the list.
//
// Complexity: O(n)
func (l *List[T]) Contains(elem T) bool {
	return l.Find(elem) != nil
}

// Count returns the number of occurrences of elem in the list.
//
// Complexity: O(n)
func (l *List[T]) Count(elem T) int {
	if n := l.Find(elem); n != nil {
		return n.count
	}
	return 0
}

func (l *List[T]) exact(n *Node[T], elem T) *Node[T] {
	if n != nil && l.cmp(n.value, elem) == 0 {
		return n
	}
	return nil
}

// walkForward returns the last node reachable forward from n which holds a
// value less or equal to elem. The value of n must be less or equal to elem.
func (l *List[T]) walkForward(n *Node[T], elem T) *Node[T] {
	for next := n.Next(); next != nil && l.cmp(next.value, elem) <= 0; next = n.Next() {
		n = next
		l.stats.Steps++
	}
	return n
}

// walkBackward returns the first node reachable backward from n which holds a
// value less or equal to elem, or nil if there are none. The value of n must be
// greater than elem.
func (l *List[T]) walkBackward(n *Node[T], elem T) *Node[T] {
	for {
		if n = n.Prev(); n == nil {
			return nil
		}
		l.stats.Steps++
		if l.cmp(n.value, elem) <= 0 {
			return n
		}
	}
}
