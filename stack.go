package main

import (
	"fmt"
	"io"
)

// Stack is a LIFO container that only tracks its top node
type Stack struct {
	top *Node
}

// Push puts a detached node on top of the stack
func (s *Stack) Push(n *Node) error {
	if err := n.attach(); err != nil {
		return fmt.Errorf("stack: push: %w", err)
	}
	n.next = s.top
	s.top = n
	return nil
}

// Pop removes the top node and hands it back unlinked
func (s *Stack) Pop() (*Node, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("stack: pop: %w", ErrEmptyContainer)
	}
	n := s.top
	s.top = n.next
	return n.detach(), nil
}

// Peek returns the top node without removing it, possibly nil
func (s *Stack) Peek() *Node {
	return s.top
}

func (s *Stack) IsEmpty() bool {
	return s.top == nil
}

func (s *Stack) Len() int {
	return chainLen(s.top)
}

// Each visits nodes from the top down
func (s *Stack) Each(fn func(*Node)) {
	chainEach(s.top, fn)
}

func (s *Stack) Print(w io.Writer) {
	s.Each(func(n *Node) {
		fmt.Fprintln(w, n.Describe())
	})
}

// Clear pops and destroys every node, returning how many were destroyed
func (s *Stack) Clear() int {
	cleared := 0
	for !s.IsEmpty() {
		n, _ := s.Pop()
		n.Destroy()
		cleared++
	}
	return cleared
}
