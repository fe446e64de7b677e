package seq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("seq")

var (
	// ErrNoArguments is returned when no operand is given.
	ErrNoArguments = Error.New("missing operand")

	// ErrNotANumber is the cause of a ParseError for a NaN operand.
	ErrNotANumber = errors.New("not a number")
)

// ParseError reports an operand that is not a valid number.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrNotANumber) {
		return fmt.Sprintf("invalid 'not-a-number' argument: %s", quote(e.Token))
	}

	return fmt.Sprintf("invalid floating point argument: %s", quote(e.Token))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ZeroIncrement reports an increment equal to zero.
type ZeroIncrement struct {
	Token string
}

func (e *ZeroIncrement) Error() string {
	return fmt.Sprintf("invalid Zero increment value: %s", quote(e.Token))
}

// ExtraOperand reports operands beyond the third.
type ExtraOperand struct {
	Token string
}

func (e *ExtraOperand) Error() string {
	return fmt.Sprintf("extra operand %s", quote(e.Token))
}

// IsUsage reports whether err was caused by the operands given to seq, as
// opposed to the custom format or the output stream.
func IsUsage(err error) bool {
	var (
		parse *ParseError
		zero  *ZeroIncrement
		extra *ExtraOperand
	)

	return errors.Is(err, ErrNoArguments) ||
		errors.As(err, &parse) ||
		errors.As(err, &zero) ||
		errors.As(err, &extra)
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
