package sortedlist_test

import (
	"errors"
	"fmt"

	"github.com/segmentio/sortedlist/compare"
	"github.com/segmentio/sortedlist/container/sortedlist"
)

func Example() {
	l := sortedlist.New[int]()
	l.Insert(5)
	l.Insert(3)
	n := l.Insert(5)

	fmt.Println(l.Values(), l.Len(), n.Count())

	l.Update(n, 4)
	fmt.Println(l.Values())
	// Output:
	// [3 5 5] 3 2
	// [3 4 5]
}

func ExampleList_InsertHint() {
	l := sortedlist.New[int]()
	hint := l.Insert(100)

	// Inserting values close to each other is fast when the previous node is
	// passed as hint.
	for i := 101; i < 105; i++ {
		hint = l.InsertHint(i, hint)
	}

	fmt.Println(l.Values(), l.Stats().Steps)
	// Output: [100 101 102 103 104] 0
}

func ExampleList_RemoveN() {
	l := sortedlist.New[string]()
	for _, s := range []string{"b", "a", "b", "c", "b"} {
		l.Insert(s)
	}

	b := l.Find("b")
	if _, err := l.RemoveN(b, 4); errors.Is(err, sortedlist.ErrInvalidCount) {
		fmt.Println("cannot remove 4 of", b.Count())
	}

	l.RemoveN(b, 2)
	fmt.Println(l.Values())
	// Output:
	// cannot remove 4 of 3
	// [a b c]
}

func ExampleList_Get() {
	l := sortedlist.NewFunc(compare.Reverse(compare.Function[int]))
	for _, v := range []int{1, 2, 2, 3} {
		l.Insert(v)
	}

	v, _ := l.Get(2)
	fmt.Println(v)

	_, err := l.Get(4)
	fmt.Println(errors.Is(err, sortedlist.ErrIndexOutOfRange))
	// Output:
	// 2
	// true
}
