package dlist

type node[T comparable] struct {
	element    T
	next, prev *node[T]
}

// Node is a read-only view of a node, as returned by List.Head and List.Tail.
// Element is copied when the view is taken; Next and Prev follow the links
// the node has at the time they are called. A view of a node that has since
// been removed has no neighbours.
type Node[T comparable] struct {
	Element T
	node    *node[T]
}

func view[T comparable](n *node[T]) (Node[T], bool) {
	if n == nil {
		return Node[T]{}, false
	}
	return Node[T]{Element: n.element, node: n}, true
}

func (v Node[T]) Next() (Node[T], bool) {
	if v.node == nil {
		return Node[T]{}, false
	}
	return view(v.node.next)
}

func (v Node[T]) Prev() (Node[T], bool) {
	if v.node == nil {
		return Node[T]{}, false
	}
	return view(v.node.prev)
}
