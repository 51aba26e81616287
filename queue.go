package main

import (
	"fmt"
	"io"
)

// Queue is a FIFO container. Front and Back are either both nil or both set.
type Queue struct {
	front *Node
	back  *Node
}

// Add a detached node to the back of the Queue
func (q *Queue) Enqueue(n *Node) error {
	if err := n.attach(); err != nil {
		return fmt.Errorf("queue: enqueue: %w", err)
	}
	if q.IsEmpty() {
		q.front = n
		q.back = n
		return nil
	}

	q.back.next = n
	q.back = n
	return nil
}

// Removes the node at the front of the Queue and hands it back unlinked
func (q *Queue) Dequeue() (*Node, error) {
	if q.IsEmpty() {
		return nil, fmt.Errorf("queue: dequeue: %w", ErrEmptyContainer)
	}

	n := q.front
	q.front = n.next
	if q.front == nil {
		q.back = nil
	}
	return n.detach(), nil
}

// Returns the node at the front of the Queue, possibly nil
func (q *Queue) Front() *Node {
	return q.front
}

// Returns the node at the back of the Queue, possibly nil
func (q *Queue) Back() *Node {
	return q.back
}

func (q *Queue) IsEmpty() bool {
	return q.front == nil
}

func (q *Queue) Len() int {
	return chainLen(q.front)
}

// Each visits nodes from front to back
func (q *Queue) Each(fn func(*Node)) {
	chainEach(q.front, fn)
}

func (q *Queue) Print(w io.Writer) {
	q.Each(func(n *Node) {
		fmt.Fprintln(w, n.Describe())
	})
}

// Dequeues and destroys every node, returning how many were destroyed
func (q *Queue) Clear() int {
	cleared := 0
	for !q.IsEmpty() {
		n, _ := q.Dequeue()
		n.Destroy()
		cleared++
	}
	return cleared
}
