package seq

import (
	"fmt"
	"io"
	"iter"

	"github.com/calebcase/seq/decimal"
	"github.com/calebcase/seq/output"
)

// done reports whether value has passed the last value in the direction of
// the increment. A NaN value (inf + -inf) ends the sequence.
func (s *Spec) done(value decimal.Extended) bool {
	switch {
	case value.IsNaN():
		return true
	case s.Increment.Sign() >= 0:
		return value.Greater(s.Last)
	}

	return value.Less(s.Last)
}

// Values returns the values of the sequence, computed lazily. The sequence
// may be unbounded (an infinite last value).
func (s *Spec) Values() iter.Seq[decimal.Extended] {
	return func(yield func(decimal.Extended) bool) {
		for value := s.First; !s.done(value); value = value.Add(s.Increment) {
			if !yield(value) {
				return
			}
		}
	}
}

// Text renders one value the way Print does.
func (s *Spec) Text(value decimal.Extended) string {
	if s.Format != nil {
		return s.Format.Sprint(value.Float64())
	}

	return Render(value, s.FieldWidth(), s.Precision)
}

// Print writes the sequence to w. Nothing at all is written for an empty
// sequence. A reader closing the pipe ends printing without an error.
func Print(w io.Writer, s *Spec) (err error) {
	e := output.NewEncoder(w, s.Separator, s.Terminator)

	for value := range s.Values() {
		err = e.Value([]byte(s.Text(value)))
		if err != nil {
			break
		}
	}

	if err == nil {
		err = e.Finish()
	}

	switch {
	case err == nil:
		return nil
	case output.IsBrokenPipe(err):
		return nil
	}

	return Error.Wrap(fmt.Errorf("write error: %w", err))
}
