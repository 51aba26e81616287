package main

import (
	"errors"
	"strings"
	"testing"
)

func TestNewNode(t *testing.T) {
	n := NewNode("Ada", "Lovelace", 1815, 36)
	r := n.Record()
	if r.FirstName != "Ada" || r.LastName != "Lovelace" || r.PUID != 1815 || r.Age != 36 {
		t.Fatalf("Unexpected record %+v", r)
	}
	if n.Next() != nil || n.Linked() || n.Destroyed() {
		t.Fatal("New node should be detached")
	}
	if NewNode("Ada", "Lovelace", 1815, 36).ID == n.ID {
		t.Fatal("Two nodes share an ID")
	}
}

func TestDescribe(t *testing.T) {
	n := NewNode("Ada", "Lovelace", 1815, 36)
	want := "Node(first_name: Ada, last_name: Lovelace, puid: 1815, age: 36, next: nil)"
	if got := n.Describe(); got != want {
		t.Fatalf("Expected %q, got %q", want, got)
	}

	s := &Stack{}
	s.Push(n)
	top := NewNode("Alan", "Turing", 1912, 41)
	s.Push(top)
	if !strings.HasSuffix(top.Describe(), "next: "+n.Handle()+")") {
		t.Fatalf("Describe should name the successor, got %q", top.Describe())
	}
}

func TestDestroy(t *testing.T) {
	n := NewNode("Ada", "Lovelace", 1815, 36)
	if err := n.Destroy(); err != nil {
		t.Fatal(err)
	}
	if !n.Destroyed() || n.Record() != (Record{}) {
		t.Fatal("Destroy should release the record")
	}
	if err := n.Destroy(); !errors.Is(err, ErrNodeDestroyed) {
		t.Fatalf("Expected ErrNodeDestroyed on second destroy, got %v", err)
	}

	var nilNode *Node
	if err := nilNode.Destroy(); !errors.Is(err, ErrNilNode) {
		t.Fatalf("Expected ErrNilNode, got %v", err)
	}
}

func TestDestroyLinkedNode(t *testing.T) {
	s := &Stack{}
	n := NewNode("Ada", "Lovelace", 1815, 36)
	s.Push(n)
	if err := n.Destroy(); !errors.Is(err, ErrNodeLinked) {
		t.Fatalf("Expected ErrNodeLinked, got %v", err)
	}
	if s.Len() != 1 || n.Destroyed() {
		t.Fatal("Failed destroy must not change the stack")
	}
}

func TestDestroyDoesNotCascade(t *testing.T) {
	s := &Stack{}
	bottom := NewNode("a", "a", 1, 1)
	top := NewNode("b", "b", 2, 2)
	s.Push(bottom)
	s.Push(top)

	n, _ := s.Pop()
	n.Destroy()
	if bottom.Destroyed() || s.Peek() != bottom {
		t.Fatal("Destroying one node must leave the rest of the chain alone")
	}
}
