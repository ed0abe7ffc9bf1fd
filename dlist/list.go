// Package dlist implements a doubly linked list with head and tail
// references, so both ends are reachable in constant time and the list can be
// walked in either direction.
//
// A List is not safe for concurrent use.
package dlist

import (
	"fmt"
	"io"

	"github.com/smartwalle/linked/internal"
)

type List[T comparable] struct {
	head  *node[T]
	tail  *node[T]
	len   int
	empty T
}

func New[T comparable]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// Head returns a view of the first node. The second result is false when the
// list is empty.
func (l *List[T]) Head() (Node[T], bool) {
	return view(l.head)
}

// Tail returns a view of the last node. The second result is false when the
// list is empty.
func (l *List[T]) Tail() (Node[T], bool) {
	return view(l.tail)
}

func (l *List[T]) Append(element T) {
	l.InsertAt(l.len, element)
}

func (l *List[T]) IndexOf(element T) int {
	var index = 0
	for current := l.head; current != nil; current = current.next {
		if current.element == element {
			return index
		}
		index++
	}
	return -1
}

// InsertAt links element in at position, which must be in [0, Len()].
// It returns false and leaves the list untouched otherwise.
func (l *List[T]) InsertAt(position int, element T) bool {
	if !internal.CanInsert(position, l.len) {
		return false
	}

	var n = &node[T]{element: element}
	switch {
	case position == 0:
		if l.head == nil {
			l.tail = n
		} else {
			n.next = l.head
			l.head.prev = n
		}
		l.head = n
	case position == l.len:
		l.tail.next = n
		n.prev = l.tail
		l.tail = n
	default:
		var next = l.nodeAt(position)
		var prev = next.prev
		prev.next = n
		next.prev = n
		n.prev = prev
		n.next = next
	}
	l.len++
	return true
}

// RemoveAt unlinks the element at position and returns it. The second result
// is false, and the list untouched, when position is outside [0, Len()).
func (l *List[T]) RemoveAt(position int) (T, bool) {
	if !internal.CanAccess(position, l.len) {
		return l.empty, false
	}

	var removed *node[T]
	switch {
	case position == 0:
		removed = l.head
		l.head = removed.next
		if l.head == nil {
			l.tail = nil
		} else {
			l.head.prev = nil
		}
	case position == l.len-1:
		removed = l.tail
		l.tail = removed.prev
		l.tail.next = nil
	default:
		removed = l.nodeAt(position)
		removed.prev.next = removed.next
		removed.next.prev = removed.prev
	}
	removed.next = nil
	removed.prev = nil
	l.len--
	return removed.element, true
}

func (l *List[T]) Remove(element T) (T, bool) {
	return l.RemoveAt(l.IndexOf(element))
}

func (l *List[T]) Clear() {
	for l.head != nil {
		var n = l.head
		l.head = n.next
		n.next = nil
		n.prev = nil
	}
	l.tail = nil
	l.len = 0
}

func (l *List[T]) Range(f func(index int, element T) bool) {
	if f == nil {
		return
	}
	var index = 0
	for current := l.head; current != nil; current = current.next {
		if !f(index, current.element) {
			return
		}
		index++
	}
}

// RangeReverse walks from tail to head. index is the element's position
// counted from the head.
func (l *List[T]) RangeReverse(f func(index int, element T) bool) {
	if f == nil {
		return
	}
	var index = l.len - 1
	for current := l.tail; current != nil; current = current.prev {
		if !f(index, current.element) {
			return
		}
		index--
	}
}

func (l *List[T]) Values() []T {
	var values = make([]T, 0, l.len)
	for current := l.head; current != nil; current = current.next {
		values = append(values, current.element)
	}
	return values
}

func (l *List[T]) String() string {
	var j internal.Joiner
	for current := l.head; current != nil; current = current.next {
		j.Add(current.element)
	}
	return j.String()
}

func (l *List[T]) Print(w io.Writer) {
	fmt.Fprintln(w, l.String())
}

// nodeAt walks from whichever end is closer. position must already be
// checked against the length.
func (l *List[T]) nodeAt(position int) *node[T] {
	if position < l.len/2 {
		var current = l.head
		for i := 0; i < position; i++ {
			current = current.next
		}
		return current
	}
	var current = l.tail
	for i := l.len - 1; i > position; i-- {
		current = current.prev
	}
	return current
}
