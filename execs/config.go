package execs

import (
	"fmt"
	"strings"

	"github.com/reusee/bf/tapes"
)

// EOFPolicy decides the cell value written by an input instruction once the
// source is exhausted.
type EOFPolicy uint8

const (
	EOFUnchanged EOFPolicy = iota
	EOFZero
	EOFMax
)

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "unchanged":
		return EOFUnchanged, nil
	case "zero":
		return EOFZero, nil
	case "max":
		return EOFMax, nil
	}
	return 0, fmt.Errorf("unknown eof policy: %q", str)
}

func (e EOFPolicy) String() string {
	switch e {
	case EOFUnchanged:
		return "unchanged"
	case EOFZero:
		return "zero"
	case EOFMax:
		return "max"
	}
	return fmt.Sprintf("EOFPolicy(%d)", uint8(e))
}

func (e EOFPolicy) MarshalText() ([]byte, error) {
	switch e {
	case EOFUnchanged, EOFZero, EOFMax:
		return []byte(e.String()), nil
	}
	return nil, fmt.Errorf("invalid eof policy: %d", uint8(e))
}

func (e *EOFPolicy) UnmarshalText(text []byte) error {
	policy, err := ParseEOFPolicy(string(text))
	if err != nil {
		return err
	}
	*e = policy
	return nil
}

// MaxMemorySize bounds the tape allocation of a single execution.
const MaxMemorySize = 1 << 30

type Config struct {
	MemorySize int
	// zero means unbounded
	OperationLimit int
	EOFPolicy      EOFPolicy
}

func DefaultConfig() Config {
	return Config{
		MemorySize: tapes.DefaultSize,
		EOFPolicy:  EOFUnchanged,
	}
}

func (c Config) Validate() error {
	if c.MemorySize <= 0 {
		return fmt.Errorf("memory size must be positive, got %d", c.MemorySize)
	}
	if c.MemorySize > MaxMemorySize {
		return fmt.Errorf("memory size %d exceeds the maximum %d", c.MemorySize, MaxMemorySize)
	}
	if c.OperationLimit < 0 {
		return fmt.Errorf("operation limit must be positive, got %d", c.OperationLimit)
	}
	if _, err := c.EOFPolicy.MarshalText(); err != nil {
		return err
	}
	return nil
}
