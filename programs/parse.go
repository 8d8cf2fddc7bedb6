package programs

import (
	"errors"
	"fmt"
)

var ErrUnbalancedBrackets = errors.New("unbalanced brackets")

type BracketError struct {
	Index    int
	Position Position
	Open     bool
}

func (e *BracketError) Error() string {
	if e.Open {
		return fmt.Sprintf("unmatched '[' at %v", e.Position)
	}
	return fmt.Sprintf("unmatched ']' at %v", e.Position)
}

func (e *BracketError) Unwrap() error {
	return ErrUnbalancedBrackets
}

func Parse(source string) (*Program, error) {
	program := new(Program)
	var opens []int
	line, column := 1, 0

	for offset, r := range source {
		column++
		if r == '\n' {
			line++
			column = 0
			continue
		}

		op, ok := opForSymbol(r)
		if !ok {
			continue
		}
		index := len(program.ops)
		pos := Position{
			Offset: offset,
			Line:   line,
			Column: column,
		}

		switch op {
		case OpJumpZero:
			opens = append(opens, index)
		case OpJumpNonZero:
			if len(opens) == 0 {
				return nil, &BracketError{
					Index:    index,
					Position: pos,
				}
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			program.ops[open] = OpJumpZero.With(index + 1)
			op = OpJumpNonZero.With(open)
		}

		program.ops = append(program.ops, op)
		program.positions = append(program.positions, pos)
	}

	if len(opens) > 0 {
		index := opens[len(opens)-1]
		return nil, &BracketError{
			Index:    index,
			Position: program.positions[index],
			Open:     true,
		}
	}

	return program, nil
}
