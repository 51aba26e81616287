package main

import (
	"fmt"

	"github.com/google/uuid"
)

type Record struct {
	FirstName string
	LastName  string
	PUID      int
	Age       int
}

// A Node owns one Record and the link to the next Node in whatever container
// holds it. It belongs to at most one container at a time.
type Node struct {
	ID     uuid.UUID
	record Record
	next   *Node

	// Set while a Stack or Queue owns this node
	linked    bool
	destroyed bool
}

func NewNode(first, last string, puid, age int) *Node {
	return &Node{
		ID:     uuid.New(),
		record: Record{FirstName: first, LastName: last, PUID: puid, Age: age},
	}
}

func (n *Node) Record() Record {
	return n.record
}

// Next returns the successor while the node is linked, nil otherwise
func (n *Node) Next() *Node {
	return n.next
}

func (n *Node) Linked() bool {
	return n.linked
}

func (n *Node) Destroyed() bool {
	return n.destroyed
}

// Handle is the short form of the node ID used when rendering
func (n *Node) Handle() string {
	if n == nil {
		return "nil"
	}
	return n.ID.String()[:8]
}

func (n *Node) Describe() string {
	r := n.record
	return fmt.Sprintf("Node(first_name: %s, last_name: %s, puid: %d, age: %d, next: %s)",
		r.FirstName, r.LastName, r.PUID, r.Age, n.next.Handle())
}

// Destroy releases the record. The node must already be detached. It does not
// touch the successor, so callers that own a chain free it node by node.
func (n *Node) Destroy() error {
	if n == nil {
		return ErrNilNode
	}
	if n.destroyed {
		return ErrNodeDestroyed
	}
	if n.linked {
		return ErrNodeLinked
	}
	n.record = Record{}
	n.next = nil
	n.destroyed = true
	return nil
}

// attach validates that a node can be handed to a container and marks it owned
func (n *Node) attach() error {
	switch {
	case n == nil:
		return ErrNilNode
	case n.destroyed:
		return ErrNodeDestroyed
	case n.linked || n.next != nil:
		return ErrNodeLinked
	}
	n.linked = true
	return nil
}

// detach severs the node from the chain it was taken from
func (n *Node) detach() *Node {
	n.next = nil
	n.linked = false
	return n
}
