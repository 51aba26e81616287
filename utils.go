package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	CYAN  = "\x1b[36m"
	RESET = "\x1b[0m"
)

var errNoInput = errors.New("no more input")

// Reads the next whitespace separated token
func readWord(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return sc.Text(), nil
}

// Keeps prompting until a whole number is entered
func readInt(sc *bufio.Scanner, w io.Writer, prompt string) (int, error) {
	for {
		fmt.Fprint(w, prompt)
		word, err := readWord(sc)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(word)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(w, "'%s' is not a whole number.\n", word)
	}
}
