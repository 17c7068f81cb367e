package list

import (
	"math/rand"
	"sync"
	"testing"
	"time"
)

func TestPushFront(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 10; i++ {
		list.PushFront(i)
	}

	assertList(t, list, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0)
}

func TestPushBack(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 10; i++ {
		list.PushBack(i)
	}

	assertList(t, list, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func TestInsertAfter(t *testing.T) {
	list := new(List[int])
	a := list.PushBack(1)
	c := list.PushBack(3)

	list.InsertAfter(2, a)
	assertList(t, list, 1, 2, 3)

	list.InsertAfter(4, c)
	assertList(t, list, 1, 2, 3, 4)
}

func TestInsertBefore(t *testing.T) {
	list := new(List[int])
	b := list.PushBack(2)
	d := list.PushBack(4)

	list.InsertBefore(3, d)
	assertList(t, list, 2, 3, 4)

	list.InsertBefore(1, b)
	assertList(t, list, 1, 2, 3, 4)
}

func TestInsertAfterForeignElement(t *testing.T) {
	list, other := new(List[int]), new(List[int])
	e := other.PushBack(1)

	defer func() {
		if recover() == nil {
			t.Error("inserting after an element of another list did not panic")
		}
	}()

	list.InsertAfter(2, e)
}

func TestMoveToFront(t *testing.T) {
	list := new(List[int])
	elem := (*Element[int])(nil)

	for i := 0; i < 10; i++ {
		e := list.PushBack(i)
		if i == 4 {
			elem = e
		}
	}

	list.MoveToFront(list.Front()) // no-op
	assertList(t, list, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	list.MoveToFront(elem)
	assertList(t, list, 4, 0, 1, 2, 3, 5, 6, 7, 8, 9)

	list.MoveToFront(list.Back())
	assertList(t, list, 9, 4, 0, 1, 2, 3, 5, 6, 7, 8)
}

func TestMoveToBack(t *testing.T) {
	list := new(List[int])
	elem := (*Element[int])(nil)

	for i := 0; i < 10; i++ {
		e := list.PushBack(i)
		if i == 4 {
			elem = e
		}
	}

	list.MoveToBack(list.Front())
	assertList(t, list, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0)

	list.MoveToBack(elem)
	assertList(t, list, 1, 2, 3, 5, 6, 7, 8, 9, 0, 4)

	list.MoveToBack(list.Back()) // no-op
	assertList(t, list, 1, 2, 3, 5, 6, 7, 8, 9, 0, 4)
}

func TestRemove(t *testing.T) {
	list := new(List[int])
	elem := (*Element[int])(nil)

	for i := 0; i < 10; i++ {
		e := list.PushBack(i)
		if i == 4 {
			elem = e
		}
	}

	list.Remove(list.Front())
	assertList(t, list, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	if v := list.Remove(elem); v != 4 {
		t.Errorf("wrong value returned by remove: got=%d want=4", v)
	}
	assertList(t, list, 1, 2, 3, 5, 6, 7, 8, 9)

	if elem.Linked() || elem.Next() != nil || elem.Prev() != nil {
		t.Error("removed element is still linked")
	}

	list.Remove(elem) // no-op
	assertList(t, list, 1, 2, 3, 5, 6, 7, 8, 9)

	list.Remove(list.Back())
	assertList(t, list, 1, 2, 3, 5, 6, 7, 8)
}

func TestRemoveAll(t *testing.T) {
	list := new(List[int])
	elems := make([]*Element[int], 0, 10)

	for i := 0; i < 10; i++ {
		elems = append(elems, list.PushBack(i))
	}

	list.RemoveAll()
	assertList(t, list)

	for i, e := range elems {
		if e.Linked() {
			t.Errorf("element at index %d is still linked after removing all elements", i)
		}
	}
}

func assertList(t *testing.T, l *List[int], v ...int) {
	t.Helper()

	if len(v) == 0 {
		if front := l.Front(); front != nil {
			t.Errorf("front of list mismatch, expected <nil> but found %+v", front.Value)
		}
		if back := l.Back(); back != nil {
			t.Errorf("back of list mismatch, expected <nil> but found %+v", back.Value)
		}
	} else {
		if front := l.Front(); front == nil {
			t.Errorf("front of list mismatch, expected %d but found <nil>", v[0])
		} else if front.Value != v[0] {
			t.Errorf("front of list mismatch, expected %d but found %d", v[0], front.Value)
		}

		if back := l.Back(); back == nil {
			t.Errorf("back of list mismatch, expected %d but found <nil>", v[len(v)-1])
		} else if back.Value != v[len(v)-1] {
			t.Errorf("back of list mismatch, expected %d but found %d", v[len(v)-1], back.Value)
		}
	}

	for i, x := 0, l.Front(); x != nil; i, x = i+1, x.Next() {
		if i >= len(v) {
			t.Errorf("[forward] list contains too many elements, expected %d but found %d", len(v), i+1)
			break
		}
		if x.Value != v[i] {
			t.Errorf("[forward] list element at index %d mismatch, expected %d but found %d", i, v[i], x.Value)
			break
		}
	}

	for i, x := len(v)-1, l.Back(); x != nil; i, x = i-1, x.Prev() {
		if i < 0 {
			t.Errorf("[backward] list contains too many elements, expected %d but found %d", len(v), len(v)-(i+1))
			break
		}
		if x.Value != v[i] {
			t.Errorf("[backward] list element at index %d mismatch, expected %d but found %d", i, v[i], x.Value)
			break
		}
	}

	if n := l.Len(); n != len(v) {
		t.Errorf("list length mismatch, expected %d but found %d", len(v), n)
	}
}

func BenchmarkMove(b *testing.B) {
	list := new(List[int])
	elems := make([]*Element[int], 1000)
	for i := range elems {
		elems[i] = list.PushBack(i)
	}

	mutex := sync.Mutex{}
	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		n := len(elems)

		for pb.Next() {
			i := r.Intn(n)

			mutex.Lock()
			if (i % 2) == 0 {
				list.MoveToFront(elems[i])
			} else {
				list.MoveToBack(elems[i])
			}
			mutex.Unlock()
		}
	})

	seen := make(map[int]int)
	for x := list.Front(); x != nil; x = x.Next() {
		seen[x.Value]++
	}

	for value, count := range seen {
		if count > 1 {
			b.Errorf("%d occurrences of %d found in the list", count, value)
			break
		}
	}

	if len(seen) != len(elems) {
		b.Errorf("expected %d values but found %d", len(elems), len(seen))
	}
}
