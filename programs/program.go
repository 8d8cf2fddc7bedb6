package programs

import (
	"fmt"
	"strings"
)

// Position locates an instruction in the source text. Line and Column are
// 1-based, Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Program is immutable after Parse and may be shared by concurrent executions.
type Program struct {
	ops       []Op
	positions []Position
}

func (p *Program) Len() int {
	return len(p.ops)
}

func (p *Program) At(i int) Op {
	return p.ops[i]
}

func (p *Program) Position(i int) Position {
	if i < 0 || i >= len(p.positions) {
		return Position{}
	}
	return p.positions[i]
}

// String renders the instructions without comments.
func (p *Program) String() string {
	var b strings.Builder
	b.Grow(len(p.ops))
	for _, op := range p.ops {
		b.WriteByte(op.Symbol())
	}
	return b.String()
}
