// Package list contains the implementation of a type-safe, generic,
// doubly-linked list.
//
// The package is a generic counterpart to the standard library's container/list
// package. Values are held in Element[V] handles which remain valid for as long
// as the element is part of the list, so programs can keep references to
// elements and remove or move them in O(1) without searching the list.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := list.List[string]{}
//	l.PushBack("A")
//	l.PushBack("B")
//	l.PushBack("C")
//
//	for e := l.Front(); e != nil; e = e.Next() {
//		...
//	}
package list

import "fmt"

// Element is a handle on a value inserted in a list.
//
// Once removed from its list, an element has no neighbors and cannot be
// inserted again; its Value remains accessible.
type Element[V any] struct {
	prev, next *Element[V]
	list       *List[V]

	// The value held by the element.
	Value V
}

// Next returns the element right after e in its list, or nil if e is the last
// element or has been removed.
func (e *Element[V]) Next() *Element[V] {
	if e.list != nil {
		return e.next
	}
	return nil
}

// Prev returns the element right before e in its list, or nil if e is the
// first element or has been removed.
func (e *Element[V]) Prev() *Element[V] {
	if e.list != nil {
		return e.prev
	}
	return nil
}

// Linked returns true if e is currently part of a list.
func (e *Element[V]) Linked() bool { return e.list != nil }

// List values are containers of elements which support insertion at the front,
// back, and next to any element, as well as removal of elements at any position
// in O(1).
//
// The zero-value is a valid, empty list.
type List[V any] struct {
	head *Element[V]
	tail *Element[V]
	size int
}

// Len returns the number of elements in the list.
func (list *List[V]) Len() int { return list.size }

// Front returns the element at the front of the list, or nil if the list is
// empty.
func (list *List[V]) Front() *Element[V] { return list.head }

// Back returns the element at the back of the list, or nil if the list is
// empty.
func (list *List[V]) Back() *Element[V] { return list.tail }

// PushFront inserts a new element holding value at the front of the list and
// returns it.
func (list *List[V]) PushFront(value V) *Element[V] {
	e := &Element[V]{Value: value}
	list.pushFront(e)
	return e
}

// PushBack inserts a new element holding value at the back of the list and
// returns it.
func (list *List[V]) PushBack(value V) *Element[V] {
	e := &Element[V]{Value: value}
	list.pushBack(e)
	return e
}

// InsertAfter inserts a new element holding value right after mark and returns
// it.
//
// The method panics if mark is not part of the list.
func (list *List[V]) InsertAfter(value V, mark *Element[V]) *Element[V] {
	list.check(mark)
	e := &Element[V]{Value: value}
	list.insertAfter(e, mark)
	return e
}

// InsertBefore inserts a new element holding value right before mark and
// returns it.
//
// The method panics if mark is not part of the list.
func (list *List[V]) InsertBefore(value V, mark *Element[V]) *Element[V] {
	list.check(mark)
	e := &Element[V]{Value: value}
	if mark.prev == nil {
		list.pushFront(e)
	} else {
		list.insertAfter(e, mark.prev)
	}
	return e
}

// MoveToFront moves e at the front of the list.
//
// The operation is idempotent, it does nothing if e is already at the front
// of the list.
//
// The method panics if e is not part of the list.
func (list *List[V]) MoveToFront(e *Element[V]) {
	list.check(e)
	if e != list.head {
		list.remove(e)
		list.pushFront(e)
	}
}

// MoveToBack moves e at the back of the list.
//
// The operation is idempotent, it does nothing if e is already at the back
// of the list.
//
// The method panics if e is not part of the list.
func (list *List[V]) MoveToBack(e *Element[V]) {
	list.check(e)
	if e != list.tail {
		list.remove(e)
		list.pushBack(e)
	}
}

// Remove removes e from the list and returns its value.
//
// If e is nil or was already removed, the method does nothing. The method
// panics if e is part of a different list.
func (list *List[V]) Remove(e *Element[V]) (value V) {
	if e != nil {
		value = e.Value
		if e.list != nil {
			list.check(e)
			list.remove(e)
		}
	}
	return value
}

// RemoveAll removes all elements from the list. Every element is unlinked, so
// the operation runs in O(n).
func (list *List[V]) RemoveAll() {
	for e := list.head; e != nil; {
		next := e.next
		e.prev, e.next, e.list = nil, nil, nil
		e = next
	}
	list.reset()
}

func (list *List[V]) pushFront(e *Element[V]) {
	if list.head == nil {
		list.tail = e
	} else {
		e.next = list.head
		list.head.prev = e
	}
	e.list = list
	list.head = e
	list.size++
}

func (list *List[V]) pushBack(e *Element[V]) {
	if list.tail == nil {
		list.head = e
	} else {
		e.prev = list.tail
		list.tail.next = e
	}
	e.list = list
	list.tail = e
	list.size++
}

func (list *List[V]) insertAfter(e, mark *Element[V]) {
	if mark == list.tail {
		list.pushBack(e)
		return
	}
	e.prev = mark
	e.next = mark.next
	mark.next.prev = e
	mark.next = e
	e.list = list
	list.size++
}

func (list *List[V]) remove(e *Element[V]) {
	prev := e.prev
	next := e.next

	e.prev = nil
	e.next = nil
	e.list = nil

	if prev != nil {
		prev.next = next
	}

	if next != nil {
		next.prev = prev
	}

	if e == list.head {
		list.head = next
	}

	if e == list.tail {
		list.tail = prev
	}

	list.size--
}

func (list *List[V]) reset() {
	list.head = nil
	list.tail = nil
	list.size = 0
}

func (list *List[V]) check(e *Element[V]) {
	if e == nil || e.list != list {
		panic(fmt.Errorf("list element %p is not part of list %p", e, list))
	}
}
