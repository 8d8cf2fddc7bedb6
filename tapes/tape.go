package tapes

import (
	"bytes"
	"errors"
	"fmt"
)

const DefaultSize = 30000

var ErrOutOfBounds = errors.New("tape out of bounds")

type OutOfBoundsError struct {
	Index int
	Size  int
}

func (e *OutOfBoundsError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("pointer underflow: position %d is before the tape start", e.Index)
	}
	return fmt.Sprintf("pointer overflow: position %d exceeds tape length %d", e.Index, e.Size)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Tape is the working memory of one execution. Cell arithmetic wraps, the
// pointer does not.
type Tape struct {
	cells   []byte
	pointer int
}

func New(size int) *Tape {
	return &Tape{
		cells: make([]byte, size),
	}
}

func (t *Tape) Read() byte {
	return t.cells[t.pointer]
}

// Write stores v mod 256.
func (t *Tape) Write(v int) {
	t.cells[t.pointer] = byte(v)
}

func (t *Tape) Add(delta int) {
	t.cells[t.pointer] += byte(delta)
}

// Move leaves the pointer untouched when the target is outside the tape.
func (t *Tape) Move(delta int) error {
	index := t.pointer + delta
	if index < 0 || index >= len(t.cells) {
		return &OutOfBoundsError{
			Index: index,
			Size:  len(t.cells),
		}
	}
	t.pointer = index
	return nil
}

func (t *Tape) Pointer() int {
	return t.pointer
}

func (t *Tape) Size() int {
	return len(t.cells)
}

func (t *Tape) Cells() []byte {
	return bytes.Clone(t.cells)
}

// Trimmed returns the cells without trailing zeros.
func (t *Tape) Trimmed() []byte {
	end := len(t.cells)
	for end > 0 && t.cells[end-1] == 0 {
		end--
	}
	return bytes.Clone(t.cells[:end])
}

// Load copies cells to the start of the tape and places the pointer.
func (t *Tape) Load(cells []byte, pointer int) error {
	if len(cells) > len(t.cells) {
		return fmt.Errorf("initial tape has %d cells, memory size is %d", len(cells), len(t.cells))
	}
	if pointer < 0 || pointer >= len(t.cells) {
		return &OutOfBoundsError{
			Index: pointer,
			Size:  len(t.cells),
		}
	}
	copy(t.cells, cells)
	clear(t.cells[len(cells):])
	t.pointer = pointer
	return nil
}
