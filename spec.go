package seq

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/seq/decimal"
	"github.com/calebcase/seq/number"
	"github.com/calebcase/seq/printf"
)

// Options are the printing settings chosen on the command line.
type Options struct {
	Separator  string
	Terminator string
	EqualWidth bool

	// Format is the custom printf template, or nil for the default
	// rendering.
	Format *string
}

// DefaultOptions returns newline separated, newline terminated output.
func DefaultOptions() Options {
	return Options{
		Separator:  "\n",
		Terminator: "\n",
	}
}

// Spec is a resolved sequence: its bounds, step and how to print it.
type Spec struct {
	First     decimal.Extended
	Increment decimal.Extended
	Last      decimal.Extended

	// Precision is the number of fractional digits printed for every
	// value, or nil to print values in compact float form.
	Precision *int

	// PadWidth is the widest integral digit count of the operands.
	PadWidth   int
	EqualWidth bool

	Separator  string
	Terminator string

	Format *printf.Format
}

// FormatError reports a custom format that cannot be used.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return errs.Unwrap(e.Err).Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewSpec builds a Spec from one to three operands: LAST, FIRST LAST or
// FIRST INCREMENT LAST. Omitted operands default to 1.
func NewSpec(args []string, opts Options) (s *Spec, err error) {
	switch {
	case len(args) == 0:
		return nil, ErrNoArguments
	case len(args) > 3:
		return nil, Error.Wrap(&ExtraOperand{Token: args[3]})
	}

	first, increment := number.One(), number.One()

	if len(args) > 1 {
		first, err = parseOperand(args[0])
		if err != nil {
			return nil, err
		}
	}

	if len(args) > 2 {
		increment, err = parseOperand(args[1])
		if err != nil {
			return nil, err
		}

		if increment.Value.IsZero() {
			return nil, Error.Wrap(&ZeroIncrement{Token: args[1]})
		}
	}

	last, err := parseOperand(args[len(args)-1])
	if err != nil {
		return nil, err
	}

	s = &Spec{
		First:      first.Value,
		Increment:  increment.Value,
		Last:       last.Value,
		Precision:  number.SelectPrecision(first.Precision, increment.Precision, last.Precision),
		PadWidth:   number.Width(first, increment, last),
		EqualWidth: opts.EqualWidth,
		Separator:  opts.Separator,
		Terminator: opts.Terminator,
	}

	if opts.Format != nil {
		s.Format, err = printf.Parse(*opts.Format)
		if err != nil {
			return nil, Error.Wrap(&FormatError{Err: err})
		}
	}

	return s, nil
}

func parseOperand(token string) (p number.Parsed, err error) {
	p, err = number.Parse(token)
	if err != nil {
		return p, Error.Wrap(&ParseError{Token: token, Err: err})
	}

	// A NaN bound or start can never be passed, so it is refused rather
	// than iterated.
	if p.Value.IsNaN() {
		return p, Error.Wrap(&ParseError{Token: token, Err: ErrNotANumber})
	}

	return p, nil
}

// FieldWidth returns the width every value is padded to.
func (s *Spec) FieldWidth() int {
	return FieldWidth(s.EqualWidth, s.PadWidth, s.Precision)
}
