package streams

import (
	"bufio"
	"errors"
	"io"
)

type ReaderSource struct {
	r *bufio.Reader
}

var _ Source = new(ReaderSource)

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{
		r: bufio.NewReader(r),
	}
}

func (s *ReaderSource) Next() (byte, bool, error) {
	b, err := s.r.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return b, true, nil
}

type WriterSink struct {
	w         *bufio.Writer
	flushEach bool
}

var _ Sink = new(WriterSink)

// NewWriterSink buffers output. With flushEach, every byte reaches w before
// Append returns, so interactive programs show their prompts.
func NewWriterSink(w io.Writer, flushEach bool) *WriterSink {
	return &WriterSink{
		w:         bufio.NewWriter(w),
		flushEach: flushEach,
	}
}

func (s *WriterSink) Append(b byte) error {
	if err := s.w.WriteByte(b); err != nil {
		return err
	}
	if s.flushEach {
		return s.w.Flush()
	}
	return nil
}

func (s *WriterSink) Flush() error {
	return s.w.Flush()
}
