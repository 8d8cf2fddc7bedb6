package logs

import (
	"io"
	"os"
)

// Writer receives terminal logs. Program output owns stdout, so logs go to
// stderr.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
