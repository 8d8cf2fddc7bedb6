package batches

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/reusee/bf/execs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/programs"
	"github.com/reusee/bf/streams"
	"github.com/reusee/bf/syncs"
	"github.com/reusee/bf/tapes"
	"github.com/reusee/bf/vars"
)

// Runner replays one program against every record of a JSON lines stream.
type Runner struct {
	Program *programs.Program
	Config  execs.Config
	// records executed concurrently, at least 1
	Jobs   int
	Logger logs.Logger
}

type pendingResult struct {
	line   int
	result chan Result
}

// Run writes exactly one result line per record, in record order. Failing
// records are reported in the result stream; only failures of in or out are
// returned.
func (r Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (stats Stats, err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	jobs := max(r.Jobs, 1)

	writer := bufio.NewWriter(out)
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)

	pending := make(chan pendingResult, jobs)
	var writeFailed atomic.Bool
	writeDone := make(chan error, 1)
	go func() {
		var err error
		for p := range pending {
			result := <-p.result
			if err != nil {
				continue
			}
			stats.add(result)
			logger.DebugContext(ctx, "record done",
				"line", p.line,
				"status", result.Status,
				"operations", result.Operations,
			)
			if err = encoder.Encode(result); err != nil {
				err = fmt.Errorf("write result of line %d: %w", p.line, err)
				writeFailed.Store(true)
				continue
			}
			if len(pending) == 0 {
				if err = writer.Flush(); err != nil {
					err = fmt.Errorf("write result of line %d: %w", p.line, err)
					writeFailed.Store(true)
				}
			}
		}
		if err == nil {
			err = writer.Flush()
		}
		writeDone <- err
	}()

	sem := syncs.NewSemaphore(jobs)
	reader := bufio.NewReader(in)
	var readErr error
	for lineNum := 1; !writeFailed.Load(); lineNum++ {
		if err := ctx.Err(); err != nil {
			readErr = err
			break
		}

		line, err := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			if err := sem.AcquireContext(ctx); err != nil {
				readErr = err
				break
			}
			p := pendingResult{
				line:   lineNum,
				result: make(chan Result, 1),
			}
			pending <- p
			go func() {
				defer sem.Release()
				p.result <- r.process(line)
			}()
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			readErr = fmt.Errorf("read record at line %d: %w", lineNum, err)
			break
		}
	}
	close(pending)

	if err := <-writeDone; err != nil {
		return stats, logs.WrapSpan(ctx, err)
	}
	if readErr != nil {
		return stats, logs.WrapSpan(ctx, readErr)
	}

	logger.InfoContext(ctx, "batch done",
		"records", stats.Records,
		"statuses", stats.Statuses,
	)
	return stats, nil
}

func (r Runner) process(line []byte) Result {
	record, err := DecodeRecord(line)
	if err != nil {
		return malformed(recoverID(line), err)
	}

	config, err := record.ApplyConfig(r.Config)
	if err != nil {
		return malformed(record.ID, err)
	}

	tape := tapes.New(config.MemorySize)
	if record.Tape != nil || record.Pointer != nil {
		if err := tape.Load(record.Tape, vars.DerefOrZero(record.Pointer)); err != nil {
			return malformed(record.ID, fmt.Errorf("%w: initial state: %w", ErrMalformedRecord, err))
		}
	}

	source := streams.Bytes(record.Input)
	var sink streams.Buffer
	res := execs.New(r.Program, config, tape, &source, &sink).Run()

	pointer := res.Tape.Pointer()
	result := Result{
		ID:         record.ID,
		Status:     statusOf(res),
		Output:     sink.Bytes(),
		Tape:       res.Tape.Trimmed(),
		Pointer:    &pointer,
		Operations: res.Operations,
	}
	if res.Err != nil {
		result.Detail = res.Err.Error()
	}
	return result
}

func statusOf(res execs.Result) Status {
	switch {
	case res.Status == execs.StatusHalted:
		return StatusOK
	case errors.Is(res.Err, execs.ErrOperationLimitExceeded):
		return StatusLimitExceeded
	case errors.Is(res.Err, tapes.ErrOutOfBounds):
		return StatusTapeOutOfBounds
	}
	// records run on in-memory streams, which cannot fail
	panic(fmt.Errorf("unexpected abort: %w", res.Err))
}

func malformed(id string, err error) Result {
	return Result{
		ID:     id,
		Status: StatusMalformedRecord,
		Detail: err.Error(),
	}
}
