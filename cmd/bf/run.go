package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/bf/batches"
	"github.com/reusee/bf/execs"
	"github.com/reusee/bf/programs"
	"github.com/reusee/bf/streams"
)

// runSingle streams in to the program and its output to out, flushing every
// byte. Only stream failures are returned as errors, aborts are reported in
// the result.
func runSingle(
	program *programs.Program,
	config execs.Config,
	in io.Reader,
	out io.Writer,
) (execs.Result, error) {
	sink := streams.NewWriterSink(out, true)
	res := execs.New(
		program,
		config,
		nil,
		streams.NewReaderSource(in),
		sink,
	).Run()
	if err := sink.Flush(); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}
	return res, nil
}

func runBatch(
	ctx context.Context,
	runner batches.Runner,
	in io.Reader,
	out io.Writer,
) error {
	_, err := runner.Run(ctx, in, out)
	return err
}

func reportAbort(w io.Writer, res execs.Result) {
	fmt.Fprintf(w, "Runtime error: %v\n", res.Err)
}

// interruptContext cancels on the first interrupt and then restores the
// default handling, so a second interrupt terminates the process.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}

// isStdin reports whether location names the file behind stdin.
func isStdin(location string, stdin *os.File) bool {
	if location == "-" {
		return true
	}
	if strings.Contains(location, "://") {
		return false
	}
	info, err := os.Stat(location)
	if err != nil {
		return false
	}
	stdinInfo, err := stdin.Stat()
	if err != nil {
		return false
	}
	return os.SameFile(info, stdinInfo)
}
