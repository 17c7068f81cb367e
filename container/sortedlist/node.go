package sortedlist

import "github.com/segmentio/sortedlist/container/list"

// Node is a reference to one distinct value held in a List, along with the
// number of occurrences of that value.
//
// A node stays valid across mutations of the list for as long as at least one
// occurrence of its value remains. Once the last occurrence is removed the node
// is detached: Live returns false, Count returns zero, Next and Prev return nil,
// and Value keeps returning the last value the node held. Passing a detached
// node to any List method panics with ErrDetached.
type Node[T any] struct {
	elem  *list.Element[*Node[T]]
	owner *List[T]
	value T
	count int
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T { return n.value }

// Count returns the number of occurrences of the node's value in the list.
func (n *Node[T]) Count() int { return n.count }

// Live returns true if the node is still part of its list.
func (n *Node[T]) Live() bool { return n.elem != nil }

// Next returns the node holding the next greater value, or nil if n holds the
// largest value or is detached.
func (n *Node[T]) Next() *Node[T] {
	if n.elem != nil {
		if e := n.elem.Next(); e != nil {
			return e.Value
		}
	}
	return nil
}

// Prev returns the node holding the next lesser value, or nil if n holds the
// smallest value or is detached.
func (n *Node[T]) Prev() *Node[T] {
	if n.elem != nil {
		if e := n.elem.Prev(); e != nil {
			return e.Value
		}
	}
	return nil
}
