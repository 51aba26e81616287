package main

// Traversal shared by Stack and Queue. Both keep their nodes in one
// singly-linked chain and only differ in which end they insert at.

func chainLen(head *Node) int {
	size := 0
	for n := head; n != nil; n = n.next {
		size++
	}
	return size
}

func chainEach(head *Node, fn func(*Node)) {
	for n := head; n != nil; n = n.next {
		fn(n)
	}
}
