package streams

// Source yields program input one byte at a time. ok is false once the input
// is exhausted.
type Source interface {
	Next() (b byte, ok bool, err error)
}

// Sink receives program output one byte at a time.
type Sink interface {
	Append(b byte) error
}

// Bytes is an in-memory source. It is consumed by Next.
type Bytes []byte

var _ Source = new(Bytes)

func (b *Bytes) Next() (byte, bool, error) {
	if len(*b) == 0 {
		return 0, false, nil
	}
	c := (*b)[0]
	*b = (*b)[1:]
	return c, true, nil
}

// Buffer is an in-memory sink.
type Buffer struct {
	data []byte
}

var _ Sink = new(Buffer)

func (b *Buffer) Append(c byte) error {
	b.data = append(b.data, c)
	return nil
}

func (b *Buffer) Bytes() []byte {
	return b.data
}
