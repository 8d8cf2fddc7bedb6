//go:build unix

package main

import (
	"os"
	"testing"
	"time"
)

func TestInterruptContext(t *testing.T) {
	ctx, stop := interruptContext(t.Context())
	defer stop()
	if ctx.Err() != nil {
		t.Fatal()
	}

	process, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatal(err)
	}
	if err := process.Signal(os.Interrupt); err != nil {
		t.Fatal(err)
	}
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("not canceled")
	}
}

func TestInterruptContextReleased(t *testing.T) {
	ctx, stop := interruptContext(t.Context())
	stop()
	if ctx.Err() == nil {
		t.Fatal("should be canceled")
	}
}
