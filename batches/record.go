package batches

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/reusee/bf/execs"
)

var ErrMalformedRecord = errors.New("malformed record")

type Record struct {
	ID    string `json:"id,omitempty"`
	Input Bytes  `json:"input"`
	// initial machine state
	Tape    Bytes         `json:"tape,omitempty"`
	Pointer *int          `json:"pointer,omitempty"`
	Config  *RecordConfig `json:"config,omitempty"`
}

// RecordConfig overrides the shared config for one record.
type RecordConfig struct {
	MemorySize     *int             `json:"memory_size,omitempty"`
	OperationLimit *int             `json:"operation_limit,omitempty"`
	EOFPolicy      *execs.EOFPolicy `json:"eof_policy,omitempty"`
}

func DecodeRecord(line []byte) (record Record, err error) {
	line = bytes.TrimSpace(line)
	if !utf8.Valid(line) {
		return record, fmt.Errorf("%w: not valid UTF-8", ErrMalformedRecord)
	}
	if len(line) == 0 || line[0] != '{' {
		return record, fmt.Errorf("%w: not a JSON object", ErrMalformedRecord)
	}
	if err := json.Unmarshal(line, &record); err != nil {
		return record, fmt.Errorf("%w: invalid JSON: %w", ErrMalformedRecord, err)
	}
	return record, nil
}

// recoverID extracts the id of a record that failed to decode, so the result
// can still be correlated.
func recoverID(line []byte) string {
	var v struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(line), &v); err != nil {
		return ""
	}
	return v.ID
}

func (r Record) ApplyConfig(base execs.Config) (execs.Config, error) {
	config := base
	if r.Config != nil {
		if r.Config.MemorySize != nil {
			if *r.Config.MemorySize <= 0 {
				return config, fmt.Errorf("%w: memory_size must be positive", ErrMalformedRecord)
			}
			config.MemorySize = *r.Config.MemorySize
		}
		if r.Config.OperationLimit != nil {
			if *r.Config.OperationLimit <= 0 {
				return config, fmt.Errorf("%w: operation_limit must be positive", ErrMalformedRecord)
			}
			config.OperationLimit = *r.Config.OperationLimit
		}
		if r.Config.EOFPolicy != nil {
			config.EOFPolicy = *r.Config.EOFPolicy
		}
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return config, nil
}
