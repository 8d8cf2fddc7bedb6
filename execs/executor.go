package execs

import (
	"errors"
	"fmt"

	"github.com/reusee/bf/programs"
	"github.com/reusee/bf/streams"
	"github.com/reusee/bf/tapes"
)

var (
	ErrOperationLimitExceeded = errors.New("operation limit exceeded")
	ErrIO                     = errors.New("i/o error")
)

type Status uint8

const (
	StatusRunning Status = iota
	StatusHalted
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusHalted:
		return "halted"
	case StatusAborted:
		return "aborted"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// AbortError reports the instruction at which an execution stopped.
type AbortError struct {
	PC       int
	Position programs.Position
	Err      error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("%v (at %v)", e.Err, e.Position)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

type Result struct {
	Status     Status
	Err        error
	Operations int
	PC         int
	Tape       *tapes.Tape
}

// Executor holds the state of a single execution. It must not be shared.
type Executor struct {
	Program    *programs.Program
	Config     Config
	Tape       *tapes.Tape
	Source     streams.Source
	Sink       streams.Sink
	PC         int
	Operations int
	Status     Status
	Err        error
}

// New returns an executor in the running state. A nil tape is replaced by a
// fresh one of config.MemorySize cells. A nil source is always exhausted and a
// nil sink discards output.
func New(
	program *programs.Program,
	config Config,
	tape *tapes.Tape,
	source streams.Source,
	sink streams.Sink,
) *Executor {
	if tape == nil {
		tape = tapes.New(config.MemorySize)
	}
	return &Executor{
		Program: program,
		Config:  config,
		Tape:    tape,
		Source:  source,
		Sink:    sink,
	}
}

func Execute(
	program *programs.Program,
	config Config,
	source streams.Source,
	sink streams.Sink,
) Result {
	return New(program, config, nil, source, sink).Run()
}

func (e *Executor) Run() Result {
	for e.Step() {
	}
	return Result{
		Status:     e.Status,
		Err:        e.Err,
		Operations: e.Operations,
		PC:         e.PC,
		Tape:       e.Tape,
	}
}

// Step advances the machine by one transition and reports whether it is
// still running.
func (e *Executor) Step() bool {
	if e.Status != StatusRunning {
		return false
	}

	if e.PC >= e.Program.Len() {
		e.Status = StatusHalted
		return false
	}

	if e.Config.OperationLimit > 0 && e.Operations >= e.Config.OperationLimit {
		e.abort(ErrOperationLimitExceeded)
		return false
	}

	op := e.Program.At(e.PC)
	next := e.PC + 1

	switch op.Code() {

	case programs.OpInc:
		e.Tape.Add(1)

	case programs.OpDec:
		e.Tape.Add(-1)

	case programs.OpRight:
		if err := e.Tape.Move(1); err != nil {
			e.abort(err)
			return false
		}

	case programs.OpLeft:
		if err := e.Tape.Move(-1); err != nil {
			e.abort(err)
			return false
		}

	case programs.OpOutput:
		if e.Sink == nil {
			break
		}
		if err := e.Sink.Append(e.Tape.Read()); err != nil {
			e.abort(fmt.Errorf("%w: write output: %w", ErrIO, err))
			return false
		}

	case programs.OpInput:
		var b byte
		var ok bool
		var err error
		if e.Source != nil {
			b, ok, err = e.Source.Next()
		}
		if err != nil {
			e.abort(fmt.Errorf("%w: read input: %w", ErrIO, err))
			return false
		}
		if ok {
			e.Tape.Write(int(b))
		} else {
			switch e.Config.EOFPolicy {
			case EOFZero:
				e.Tape.Write(0)
			case EOFMax:
				e.Tape.Write(255)
			}
		}

	case programs.OpJumpZero:
		if e.Tape.Read() == 0 {
			next = op.Target()
		}

	case programs.OpJumpNonZero:
		if e.Tape.Read() != 0 {
			next = op.Target()
		}

	default:
		panic(fmt.Errorf("bad op: %v", op))
	}

	e.Operations++
	e.PC = next
	return true
}

func (e *Executor) abort(err error) {
	e.Status = StatusAborted
	e.Err = &AbortError{
		PC:       e.PC,
		Position: e.Program.Position(e.PC),
		Err:      err,
	}
}
