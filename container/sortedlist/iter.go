package sortedlist

import "iter"

// All returns a sequence of the values of the list in ascending order. Values
// with multiple occurrences are yielded once per occurrence.
//
// The sequence is lazy and may be ranged over any number of times, each
// iteration starting from the front of the list. Mutating the list during the
// iteration is safe, but the values observed after the mutation are
// unspecified; in particular, removing the node currently being iterated ends
// the iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.Front(); n != nil; n = n.Next() {
			for i := 0; i < n.count; i++ {
				if !yield(n.value) {
					return
				}
			}
		}
	}
}

// Backward is like All but yields the values in descending order.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.Back(); n != nil; n = n.Prev() {
			for i := 0; i < n.count; i++ {
				if !yield(n.value) {
					return
				}
			}
		}
	}
}

// Range calls f for each value in the list, in ascending order. If f returns
// false, the iteration is stopped.
func (l *List[T]) Range(f func(T) bool) {
	l.All()(f)
}

// Values returns a slice of all the values in the list, in ascending order.
//
// Complexity: O(n)
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.len)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// Iterator returns a cursor positioned before the first value of the list.
//
//	for it := l.Iterator(); it.Next(); {
//		v := it.Value()
//		...
//	}
func (l *List[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{list: l}
	it.Reset()
	return it
}

// Iterator is a forward cursor over the values of a List.
//
// Each call to Next runs in O(1).
type Iterator[T any] struct {
	list *List[T]
	node *Node[T]
	seen int
}

// Next advances the cursor to the next value, returning false when there are
// no more values.
func (it *Iterator[T]) Next() bool {
	for it.node != nil && it.seen >= it.node.count {
		it.node, it.seen = it.node.Next(), 0
	}
	if it.node == nil {
		return false
	}
	it.seen++
	return true
}

// Value returns the value at the current position of the cursor.
//
// It must only be called after a call to Next returned true.
func (it *Iterator[T]) Value() T { return it.node.value }

// Node returns the node holding the value at the current position of the
// cursor, which can be used as a hint or reference in calls to the list.
//
// It must only be called after a call to Next returned true.
func (it *Iterator[T]) Node() *Node[T] { return it.node }

// Reset moves the cursor back before the first value of the list.
func (it *Iterator[T]) Reset() {
	it.node, it.seen = it.list.Front(), 0
}
