// Package slist implements a singly linked list.
//
// The list keeps only a head reference, so Append walks to the last node.
// A List is not safe for concurrent use.
package slist

import (
	"fmt"
	"io"

	"github.com/smartwalle/linked/internal"
)

type List[T comparable] struct {
	head  *node[T]
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

func (l *List[T]) Append(element T) {
	var n = &node[T]{element: element}
	if l.head == nil {
		l.head = n
	} else {
		var current = l.head
		for current.next != nil {
			current = current.next
		}
		current.next = n
	}
	l.len++
}

// IndexOf returns the position of the first element equal to element, or -1.
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

// InsertAt links element in at position. Any position from 0 to Len() is
// accepted; anything else leaves the list untouched and returns false.
func (l *List[T]) InsertAt(position int, element T) bool {
	if !internal.CanInsert(position, l.len) {
		return false
	}

	var n = &node[T]{element: element}
	if position == 0 {
		n.next = l.head
		l.head = n
	} else {
		var previous = l.nodeAt(position - 1)
		n.next = previous.next
		previous.next = n
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
	if position == 0 {
		removed = l.head
		l.head = removed.next
	} else {
		var previous = l.nodeAt(position - 1)
		removed = previous.next
		previous.next = removed.next
	}
	removed.next = nil
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
	}
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

// nodeAt expects a position already checked against the length.
func (l *List[T]) nodeAt(position int) *node[T] {
	var current = l.head
	for i := 0; i < position; i++ {
		current = current.next
	}
	return current
}
