package main

import "fmt"

// ReverseQueue reverses q by draining it through s. Only the nodes taken from
// q are popped back off s, so anything already on the stack stays where it was.
func ReverseQueue(q *Queue, s *Stack) error {
	// Must be counted before q is drained
	size := q.Len()

	for !q.IsEmpty() {
		n, err := q.Dequeue()
		if err != nil {
			return err
		}
		if err := s.Push(n); err != nil {
			return err
		}
	}

	for i := 0; i < size; i++ {
		n, err := s.Pop()
		if err != nil {
			return fmt.Errorf("reverse: popped %d of %d nodes: %w", i, size, err)
		}
		if err := q.Enqueue(n); err != nil {
			return err
		}
	}
	return nil
}
