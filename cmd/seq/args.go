package main

import (
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/zeebo/errs"
)

// usageError marks errors caused by how seq was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// takesValue reports whether f consumes an argument.
func takesValue(f *pflag.Flag) bool {
	return f.NoOptDefVal == ""
}

// isOperand reports whether arg is a positional argument. Negative numbers
// such as -1, -.5, -inf and -nan are operands, not options.
func isOperand(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return true
	}

	c := arg[1]
	if c == '.' || ('0' <= c && c <= '9') {
		return true
	}

	rest := strings.ToLower(arg[1:])

	return strings.HasPrefix(rest, "inf") || strings.HasPrefix(rest, "nan")
}

// expandLong resolves name to a long flag name. An unambiguous prefix of a
// flag name selects that flag. Unknown names are returned unchanged so the
// flag parser reports them.
func expandLong(flags *pflag.FlagSet, name string) (string, error) {
	if flags.Lookup(name) != nil {
		return name, nil
	}

	var matches []string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}

		if strings.HasPrefix(f.Name, name) {
			matches = append(matches, f.Name)
		}
	})

	switch len(matches) {
	case 0:
		return name, nil
	case 1:
		return matches[0], nil
	}

	sort.Strings(matches)

	return "", &usageError{errs.New("option '--%s' is ambiguous; possibilities: '--%s'",
		name, strings.Join(matches, "' '--"))}
}

// splitShort expands a cluster of short options such as -ws, into one token
// per option. The first option taking a value consumes the rest of the
// cluster as its value, or the next argument when the cluster ends with it.
func splitShort(flags *pflag.FlagSet, arg string) (tokens []string, next bool) {
	for j := 1; j < len(arg); j++ {
		c := arg[j : j+1]
		tokens = append(tokens, "-"+c)

		f := flags.ShorthandLookup(c)
		if f == nil || !takesValue(f) {
			continue
		}

		if j+1 < len(arg) {
			return append(tokens, arg[j+1:]), false
		}

		return tokens, true
	}

	return tokens, false
}

// normalizeArgs rewrites the command line into a form the flag parser reads
// unambiguously: options first with their values split out and long names
// completed, then "--", then the operands in the order given. Options
// may appear anywhere before a literal "--".
func normalizeArgs(flags *pflag.FlagSet, args []string) ([]string, error) {
	options := []string{}
	operands := []string{}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			operands = append(operands, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "--"):
			name, value, inline := strings.Cut(arg[2:], "=")

			name, err := expandLong(flags, name)
			if err != nil {
				return nil, err
			}

			if inline {
				options = append(options, "--"+name+"="+value)

				continue
			}

			options = append(options, "--"+name)

			f := flags.Lookup(name)
			if f == nil || !takesValue(f) {
				continue
			}

			if i+1 >= len(args) {
				return nil, &usageError{errs.New("option '--%s' requires an argument", name)}
			}

			i++
			options = append(options, args[i])
		case isOperand(arg):
			operands = append(operands, arg)
		default:
			tokens, next := splitShort(flags, arg)
			options = append(options, tokens...)

			if !next {
				continue
			}

			if i+1 >= len(args) {
				return nil, &usageError{errs.New("option requires an argument -- '%s'",
					tokens[len(tokens)-1][1:])}
			}

			i++
			options = append(options, args[i])
		}
	}

	normalized := make([]string, 0, len(options)+1+len(operands))
	normalized = append(normalized, options...)
	normalized = append(normalized, "--")
	normalized = append(normalized, operands...)

	return normalized, nil
}
