package output

import (
	"bufio"
	"errors"
	"io"
	"syscall"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("output")

// ErrFinished is returned when writing to an encoder after Finish.
var ErrFinished = Error.New("encoder finished")

// Encoder writes a stream of values separated by a separator and closed by a
// terminator.
type Encoder interface {
	// Value writes one value, preceded by the separator unless it is the
	// first.
	Value(data []byte) (err error)

	// Finish writes the terminator if at least one value was written and
	// flushes buffered output.
	Finish() (err error)
}

type encoder struct {
	w *bufio.Writer

	separator  []byte
	terminator []byte

	// written is true once the first value has been written. It decides
	// whether a separator precedes the next value and whether the
	// terminator is emitted at all.
	written  bool
	finished bool
}

// NewEncoder returns an encoder writing to w. Output is buffered; memory use
// is bounded by the buffer size regardless of how many values are written.
func NewEncoder(w io.Writer, separator, terminator string) Encoder {
	return &encoder{
		w:          bufio.NewWriter(w),
		separator:  []byte(separator),
		terminator: []byte(terminator),
	}
}

func (e *encoder) Value(data []byte) (err error) {
	if e.finished {
		return ErrFinished
	}

	if e.written {
		_, err = e.w.Write(e.separator)
		if err != nil {
			return err
		}
	}

	_, err = e.w.Write(data)
	if err != nil {
		return err
	}

	e.written = true

	return nil
}

func (e *encoder) Finish() (err error) {
	if e.finished {
		return ErrFinished
	}
	defer func() {
		e.finished = true
	}()

	if e.written {
		_, err = e.w.Write(e.terminator)
		if err != nil {
			return err
		}
	}

	return e.w.Flush()
}

// IsBrokenPipe reports whether err comes from writing to a pipe whose reader
// has gone away.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
