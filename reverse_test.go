package main

import "testing"

func TestReverseQueue(t *testing.T) {
	q := &Queue{}
	s := &Stack{}
	nodes := makeNodes(1, 2, 3, 4)
	for _, n := range nodes {
		q.Enqueue(n)
	}
	for _, n := range makeNodes(9, 8) {
		s.Push(n)
	}

	if err := ReverseQueue(q, s); err != nil {
		t.Fatal(err)
	}

	if got := queueIDs(q); !equalIDs(got, []int{4, 3, 2, 1}) {
		t.Fatalf("Expected queue [4 3 2 1], got %v", got)
	}
	if got := stackIDs(s); !equalIDs(got, []int{8, 9}) {
		t.Fatalf("Expected stack untouched with 8 on top, got %v", got)
	}
	if q.Front() != nodes[3] || q.Back() != nodes[0] {
		t.Fatal("Reverse should move the original nodes, not copies")
	}
	if q.Back().Next() != nil {
		t.Fatal("Back of the queue must not have a successor")
	}
}

func TestReverseQueueEmptyStack(t *testing.T) {
	q := &Queue{}
	s := &Stack{}
	for _, n := range makeNodes(1, 2, 3) {
		q.Enqueue(n)
	}

	if err := ReverseQueue(q, s); err != nil {
		t.Fatal(err)
	}
	if got := queueIDs(q); !equalIDs(got, []int{3, 2, 1}) {
		t.Fatalf("Expected queue [3 2 1], got %v", got)
	}
	if !s.IsEmpty() {
		t.Fatal("Stack should be empty again")
	}
}

func TestReverseQueueTwice(t *testing.T) {
	q := &Queue{}
	s := &Stack{}
	for _, n := range makeNodes(1, 2, 3) {
		q.Enqueue(n)
	}
	ReverseQueue(q, s)
	ReverseQueue(q, s)
	if got := queueIDs(q); !equalIDs(got, []int{1, 2, 3}) {
		t.Fatalf("Reversing twice should restore the order, got %v", got)
	}
}

func TestReverseQueueEdgeSizes(t *testing.T) {
	q := &Queue{}
	s := &Stack{}
	s.Push(NewNode("x", "x", 7, 7))

	if err := ReverseQueue(q, s); err != nil {
		t.Fatal(err)
	}
	if !q.IsEmpty() || s.Len() != 1 {
		t.Fatal("Reversing an empty queue should change nothing")
	}

	n := NewNode("a", "a", 1, 1)
	q.Enqueue(n)
	if err := ReverseQueue(q, s); err != nil {
		t.Fatal(err)
	}
	if q.Front() != n || q.Back() != n || s.Len() != 1 {
		t.Fatal("Reversing a single node queue should change nothing")
	}
}
