package main

import (
	"errors"
	"fmt"
	"io"
)

var ErrUsage = errors.New("bad usage")

func ce(err error) {
	if err != nil {
		panic(err)
	}
}

// he reports a panicked error and sets the exit code. Other panics propagate.
func he(w io.Writer, code *int) {
	p := recover()
	if p == nil {
		return
	}
	err, ok := p.(error)
	if !ok {
		panic(p)
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	*code = 1
}
