package slist

type node[T comparable] struct {
	element T
	next    *node[T]
}
