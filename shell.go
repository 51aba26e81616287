package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
)

const (
	HISTORY_LIMIT = 20

	menu = "Choose a function you'd like to run (1-11):\n" +
		"  1) Push - Push a node onto the top of the stack\n" +
		"  2) Pop - Pop a node off of the top of the stack\n" +
		"  3) Enqueue - Enqueue a node at the back of the queue\n" +
		"  4) Dequeue - Dequeue a node from the front of the queue\n" +
		"  5) Clear Stack - Remove all nodes from the stack\n" +
		"  6) Clear Queue - Remove all nodes from the queue\n" +
		"  7) Print Stack - Print all nodes in the stack\n" +
		"  8) Print Queue - Print all nodes in the queue\n" +
		"  9) Reverse Queue - Use the stack to reverse the queue\n" +
		"  10) Exit - Exit the program\n" +
		"  11) History - Show the most recent operations\n" +
		"?: "
)

// Shell holds the one stack and one queue of a session along with the
// terminal it talks to
type Shell struct {
	Stack *Stack
	Queue *Queue

	journal Recorder // May be nil
	in      *bufio.Scanner
	out     io.Writer
	color   bool
}

func NewShell(in io.Reader, out io.Writer, journal Recorder, color bool) *Shell {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Shell{
		Stack:   &Stack{},
		Queue:   &Queue{},
		journal: journal,
		in:      sc,
		out:     out,
		color:   color,
	}
}

// Run shows the menu until the user exits or input runs out. Both containers
// are cleared before it returns.
func (sh *Shell) Run() error {
	defer sh.Close()

	for {
		sh.paint(RESET)
		fmt.Fprint(sh.out, menu)

		word, err := readWord(sh.in)
		if errors.Is(err, errNoInput) {
			return nil
		} else if err != nil {
			return err
		}

		sh.paint(CYAN)
		fmt.Fprintln(sh.out)

		choice, err := strconv.Atoi(word)
		if err != nil {
			choice = 0
		}
		if choice == 10 {
			return nil
		}
		if err := sh.Dispatch(choice); err != nil {
			if errors.Is(err, errNoInput) {
				return nil
			}
			return err
		}
		fmt.Fprintln(sh.out)
	}
}

// Dispatch runs a single menu option
func (sh *Shell) Dispatch(choice int) error {
	switch choice {
	case 1:
		n, err := sh.readNode()
		if err != nil {
			return err
		}
		return sh.push(n)
	case 2:
		sh.pop()
	case 3:
		n, err := sh.readNode()
		if err != nil {
			return err
		}
		return sh.enqueue(n)
	case 4:
		sh.dequeue()
	case 5:
		fmt.Fprintf(sh.out, "Cleared %d node(s).\n", sh.clearStack())
	case 6:
		fmt.Fprintf(sh.out, "Cleared %d node(s).\n", sh.clearQueue())
	case 7:
		fmt.Fprintf(sh.out, "There are %d node(s) in the stack:\n", sh.Stack.Len())
		sh.Stack.Print(sh.out)
	case 8:
		fmt.Fprintf(sh.out, "There are %d node(s) in the queue:\n", sh.Queue.Len())
		sh.Queue.Print(sh.out)
	case 9:
		if err := sh.reverse(); err != nil {
			return err
		}
		fmt.Fprintln(sh.out, "Queue reversed.")
	case 11:
		sh.history()
	default:
		fmt.Fprintln(sh.out, "Unknown option.")
	}
	return nil
}

// Close clears both containers so that every node is destroyed
func (sh *Shell) Close() {
	stacked := sh.clearStack()
	queued := sh.clearQueue()
	log.Printf("INFO: Destroyed %d stack node(s) and %d queue node(s) on exit\n", stacked, queued)
}

func (sh *Shell) readNode() (*Node, error) {
	fmt.Fprint(sh.out, "Enter first name: ")
	first, err := readWord(sh.in)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(sh.out, "Enter last name: ")
	last, err := readWord(sh.in)
	if err != nil {
		return nil, err
	}
	puid, err := readInt(sh.in, sh.out, "Enter your PUID: ")
	if err != nil {
		return nil, err
	}
	age, err := readInt(sh.in, sh.out, "Enter your age: ")
	if err != nil {
		return nil, err
	}
	return NewNode(first, last, puid, age), nil
}

func (sh *Shell) push(n *Node) error {
	if err := sh.Stack.Push(n); err != nil {
		return err
	}
	sh.record(PUSH, STACK, n)
	return nil
}

func (sh *Shell) enqueue(n *Node) error {
	if err := sh.Queue.Enqueue(n); err != nil {
		return err
	}
	sh.record(ENQUEUE, QUEUE, n)
	return nil
}

func (sh *Shell) pop() {
	if sh.Stack.IsEmpty() {
		fmt.Fprintln(sh.out, "Stack is empty!")
		return
	}
	n, err := sh.Stack.Pop()
	if err != nil {
		log.Println("WARNING:", err)
		fmt.Fprintln(sh.out, "Stack is empty!")
		return
	}
	sh.record(POP, STACK, n)
	fmt.Fprintln(sh.out, n.Describe())
	n.Destroy()
}

func (sh *Shell) dequeue() {
	if sh.Queue.IsEmpty() {
		fmt.Fprintln(sh.out, "Queue is empty!")
		return
	}
	n, err := sh.Queue.Dequeue()
	if err != nil {
		log.Println("WARNING:", err)
		fmt.Fprintln(sh.out, "Queue is empty!")
		return
	}
	sh.record(DEQUEUE, QUEUE, n)
	fmt.Fprintln(sh.out, n.Describe())
	n.Destroy()
}

func (sh *Shell) clearStack() int {
	nodes := []*Node{}
	sh.Stack.Each(func(n *Node) { nodes = append(nodes, n) })
	sh.recordBulk(CLEAR, STACK, nodes)
	return sh.Stack.Clear()
}

func (sh *Shell) clearQueue() int {
	nodes := []*Node{}
	sh.Queue.Each(func(n *Node) { nodes = append(nodes, n) })
	sh.recordBulk(CLEAR, QUEUE, nodes)
	return sh.Queue.Clear()
}

func (sh *Shell) reverse() error {
	if err := ReverseQueue(sh.Queue, sh.Stack); err != nil {
		return err
	}
	nodes := []*Node{}
	sh.Queue.Each(func(n *Node) { nodes = append(nodes, n) })
	sh.recordBulk(REVERSE, QUEUE, nodes)
	return nil
}

func (sh *Shell) history() {
	if sh.journal == nil {
		fmt.Fprintln(sh.out, "Journal is disabled.")
		return
	}
	entries, err := sh.journal.History(HISTORY_LIMIT)
	if err != nil {
		log.Println("ERROR: Loading history", err)
		fmt.Fprintln(sh.out, "Could not load history.")
		return
	}

	fmt.Fprintf(sh.out, "Last %d operation(s):\n", len(entries))
	for _, e := range entries {
		if e.NodeID == "" {
			fmt.Fprintf(sh.out, "  %s %s %s\n", e.TSCreated.Format("15:04:05"), e.Op, e.Container)
			continue
		}
		fmt.Fprintf(sh.out, "  %s %s %s %s %s (puid %d)\n", e.TSCreated.Format("15:04:05"), e.Op, e.Container,
			e.Record.FirstName, e.Record.LastName, e.Record.PUID)
	}
}

// Journal failures are logged by the journal and never undo a container operation
func (sh *Shell) record(op Op, container string, n *Node) {
	if sh.journal != nil {
		sh.journal.Record(op, container, n)
	}
}

func (sh *Shell) recordBulk(op Op, container string, nodes []*Node) {
	if sh.journal != nil {
		sh.journal.RecordBulk(op, container, nodes)
	}
}

func (sh *Shell) paint(code string) {
	if sh.color {
		fmt.Fprint(sh.out, code)
	}
}
