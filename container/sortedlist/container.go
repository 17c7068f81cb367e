package sortedlist

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

// Container returns a view of the list implementing the gods
// containers.Container interface. The view is backed by the list: clearing it
// clears the list.
func (l *List[T]) Container() containers.Container {
	return container[T]{list: l}
}

type container[T any] struct{ list *List[T] }

func (c container[T]) Empty() bool { return c.list.Len() == 0 }

func (c container[T]) Size() int { return c.list.Len() }

func (c container[T]) Clear() { c.list.Clear() }

func (c container[T]) Values() []interface{} {
	values := make([]interface{}, 0, c.list.Len())
	for v := range c.list.All() {
		values = append(values, v)
	}
	return values
}

func (c container[T]) String() string {
	values := make([]string, 0, c.list.Len())
	for v := range c.list.All() {
		values = append(values, fmt.Sprintf("%v", v))
	}
	return "SortedList\n" + strings.Join(values, ", ")
}
