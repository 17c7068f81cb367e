// Package sortedlist contains the implementation of a doubly-linked list which
// keeps its elements in ascending order.
//
// Duplicate values are collapsed into a single node which counts the number of
// occurrences of its value, so the list holds one node per distinct value while
// Len reports the total number of elements.
//
// Searching or inserting a value without any other information walks the list
// from its front and runs in O(n). The list is not meant to compete with
// balanced trees on blind lookups; its strengths are elsewhere:
//
//   - nodes returned by lookups and inserts are stable references which allow
//     removing occurrences of a value in O(1),
//   - the Hint variants of the search and insert methods start walking from a
//     node given by the program, and run in time proportional to the distance
//     between that node and the target rather than to the size of the list.
//
// A list is constructed by New for ordered types, or by NewFunc for any type
// given a comparison function:
//
//	l := sortedlist.New[int]()
//	l.Insert(5)
//	l.Insert(3)
//	n := l.Insert(5)
//
//	for v := range l.All() {
//		... // 3, 5, 5
//	}
//
//	l.Update(n, 4) // 3, 4, 5
//
// Node references and hints must belong to the list they are passed to and
// must still be live. Both conditions are checked in constant time, and
// violating them panics with ErrForeignNode or ErrDetached. A hint which is
// far from the target never affects correctness, only the running time.
//
// Lists are not safe to use concurrently from multiple goroutines. Programs
// that share a list must synchronize access to it, typically with a mutex
// guarding each list.
package sortedlist

import (
	"fmt"

	"github.com/segmentio/sortedlist/compare"
	"github.com/segmentio/sortedlist/container/list"
	"golang.org/x/exp/constraints"
)

// List is a sorted list of values of type T, with duplicates counted in
// shared nodes.
//
// The zero-value is a valid empty list which supports lookups and removals,
// but must be initialized by a call to Init prior to inserting any values.
// A List must not be copied after first use.
type List[T any] struct {
	cmp   func(T, T) int
	nodes list.List[*Node[T]]
	len   int
	stats Stats
}

// Stats contains counters tracking usage of a list.
//
// All counters are absolute values accumulated since the list was initialized
// or since the last call to ResetStats.
type Stats struct {
	Inserts int64 // occurrences inserted
	Removes int64 // occurrences removed
	Lookups int64 // searches, including the ones performed by inserts
	Steps   int64 // nodes walked across by searches
}

// New constructs a new list of ordered values, sorted by their natural order.
func New[T constraints.Ordered]() *List[T] {
	return NewFunc[T](compare.Function[T])
}

// NewFunc constructs a new list using the comparison function passed as
// argument to order the values.
func NewFunc[T any](cmp func(T, T) int) *List[T] {
	l := new(List[T])
	l.Init(cmp)
	return l
}

// Init initializes (or re-initializes) the list. All nodes currently held in
// the list are detached and the usage counters are reset.
//
// Complexity: O(nodes)
func (l *List[T]) Init(cmp func(T, T) int) {
	l.Clear()
	l.cmp = cmp
	l.stats = Stats{}
}

// Len returns the number of elements in the list, counting each occurrence of
// duplicate values.
//
// Complexity: O(1)
func (l *List[T]) Len() int { return l.len }

// Nodes returns the number of distinct values in the list.
//
// Complexity: O(1)
func (l *List[T]) Nodes() int { return l.nodes.Len() }

// Front returns the node holding the smallest value, or nil if the list is
// empty.
func (l *List[T]) Front() *Node[T] {
	if e := l.nodes.Front(); e != nil {
		return e.Value
	}
	return nil
}

// Back returns the node holding the largest value, or nil if the list is
// empty.
func (l *List[T]) Back() *Node[T] {
	if e := l.nodes.Back(); e != nil {
		return e.Value
	}
	return nil
}

// Min returns the smallest value of the list, and a boolean indicating whether
// the list was non-empty.
func (l *List[T]) Min() (value T, ok bool) {
	if n := l.Front(); n != nil {
		value, ok = n.value, true
	}
	return value, ok
}

// Max returns the largest value of the list, and a boolean indicating whether
// the list was non-empty.
func (l *List[T]) Max() (value T, ok bool) {
	if n := l.Back(); n != nil {
		value, ok = n.value, true
	}
	return value, ok
}

// Stats returns the current values of the list's usage counters.
func (l *List[T]) Stats() Stats { return l.stats }

// ResetStats sets all the usage counters back to zero.
func (l *List[T]) ResetStats() { l.stats = Stats{} }

// Node returns the node holding the element at position idx. Positions count
// every occurrence of duplicate values, so consecutive positions may map to the
// same node.
//
// Positions of a node shift as values are inserted or removed before it, but
// the node itself remains a valid reference.
//
// Complexity: O(idx)
func (l *List[T]) Node(idx int) (*Node[T], error) {
	if idx < 0 || idx >= l.len {
		return nil, fmt.Errorf("looking up element %d of a list of length %d: %w", idx, l.len, ErrIndexOutOfRange)
	}
	n := l.Front()
	for idx >= n.count {
		idx -= n.count
		n = n.Next()
	}
	return n, nil
}

// Get returns the value at position idx.
//
// Complexity: O(idx)
func (l *List[T]) Get(idx int) (value T, err error) {
	n, err := l.Node(idx)
	if err != nil {
		return value, err
	}
	return n.value, nil
}

// Insert inserts one occurrence of elem in the list and returns the node
// holding it. If elem was already present, the count of its node is
// incremented and no new node is created.
//
// Complexity: O(n)
func (l *List[T]) Insert(elem T) *Node[T] {
	l.mustBeInitialized()
	return l.insert(elem, l.FindBefore(elem), 1)
}

// InsertHint is like Insert but starts searching for the position of elem from
// hint. A nil hint is the same as calling Insert.
//
// Complexity: O(distance between hint and elem)
func (l *List[T]) InsertHint(elem T, hint *Node[T]) *Node[T] {
	l.mustBeInitialized()
	return l.insert(elem, l.FindBeforeHint(elem, hint), 1)
}

// InsertN inserts count occurrences of elem in the list and returns the node
// holding them. The method returns an error wrapping ErrInvalidCount if count
// is less than one.
//
// Complexity: O(n)
func (l *List[T]) InsertN(elem T, count int) (*Node[T], error) {
	if count < 1 {
		return nil, fmt.Errorf("inserting %d occurrences of %v: %w", count, elem, ErrInvalidCount)
	}
	l.mustBeInitialized()
	return l.insert(elem, l.FindBefore(elem), count), nil
}

func (l *List[T]) insert(elem T, before *Node[T], count int) *Node[T] {
	if before == nil || l.cmp(before.value, elem) != 0 {
		n := &Node[T]{owner: l, value: elem}
		if before == nil {
			n.elem = l.nodes.PushFront(n)
		} else {
			n.elem = l.nodes.InsertAfter(n, before.elem)
		}
		before = n
	}
	before.count += count
	l.len += count
	l.stats.Inserts += int64(count)
	return before
}

// Remove removes one occurrence of the value held by ref and returns it. When
// the last occurrence is removed, ref is detached from the list.
//
// Complexity: O(1)
func (l *List[T]) Remove(ref *Node[T]) T {
	l.check(ref)
	if ref.count == 1 {
		l.unlink(ref)
	} else {
		ref.count--
	}
	l.len--
	l.stats.Removes++
	return ref.value
}

// RemoveN removes count occurrences of the value held by ref and returns it.
// When count equals the number of occurrences, ref is detached from the list.
//
// The method returns an error wrapping ErrInvalidCount, and leaves the list
// unmodified, if count is negative or greater than the number of occurrences
// held by ref.
//
// Complexity: O(1)
func (l *List[T]) RemoveN(ref *Node[T], count int) (value T, err error) {
	l.check(ref)
	if count < 0 || count > ref.count {
		return value, fmt.Errorf("removing %d occurrences of %v from a node holding %d: %w", count, ref.value, ref.count, ErrInvalidCount)
	}
	if count == ref.count {
		l.unlink(ref)
	} else {
		ref.count -= count
	}
	l.len -= count
	l.stats.Removes += int64(count)
	return ref.value, nil
}

// RemoveAll removes all occurrences of the value held by ref, detaches ref
// from the list, and returns the value.
//
// Complexity: O(1)
func (l *List[T]) RemoveAll(ref *Node[T]) T {
	l.check(ref)
	count := ref.count
	l.unlink(ref)
	l.len -= count
	l.stats.Removes += int64(count)
	return ref.value
}

// Clear removes all values from the list, detaching every node.
//
// Complexity: O(nodes)
func (l *List[T]) Clear() {
	for n := l.Front(); n != nil; {
		next := n.Next()
		n.elem, n.count = nil, 0
		n = next
	}
	l.nodes.RemoveAll()
	l.len = 0
}

// Update replaces one occurrence of the value held by ref with elem, and
// returns the node now holding elem.
//
// The new position is searched starting from ref, so if ref is at position i
// and elem ends up at position j the method runs in O(|i-j|).
func (l *List[T]) Update(ref *Node[T], elem T) *Node[T] {
	n := l.InsertHint(elem, ref)
	l.Remove(ref)
	return n
}

// UpdateAt is like Update but replaces the element at position idx.
//
// Complexity: O(idx) + O(|i-j|)
func (l *List[T]) UpdateAt(idx int, elem T) (*Node[T], error) {
	ref, err := l.Node(idx)
	if err != nil {
		return nil, err
	}
	return l.Update(ref, elem), nil
}

func (l *List[T]) unlink(n *Node[T]) {
	l.nodes.Remove(n.elem)
	n.elem = nil
	n.count = 0
}

func (l *List[T]) check(n *Node[T]) {
	switch {
	case n == nil || n.owner != l:
		panic(fmt.Errorf("%w: %p", ErrForeignNode, n))
	case n.elem == nil:
		panic(fmt.Errorf("%w: last value was %v", ErrDetached, n.value))
	}
}

func (l *List[T]) mustBeInitialized() {
	if l.cmp == nil {
		panic(ErrNotInitialized)
	}
}
