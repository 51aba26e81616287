package main

import "errors"

var (
	// Returned by Pop/Dequeue on an empty container. State is left untouched.
	ErrEmptyContainer = errors.New("container is empty")

	ErrNilNode       = errors.New("node is nil")
	ErrNodeLinked    = errors.New("node is linked into a container")
	ErrNodeDestroyed = errors.New("node was destroyed")
)
