package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/calebcase/seq"
	"github.com/calebcase/seq/internal/logging"
)

const long = `Print numbers from FIRST to LAST, in steps of INCREMENT.

If FIRST or INCREMENT is omitted, it defaults to 1. That is, an omitted
INCREMENT defaults to 1 even when LAST is smaller than FIRST. The sequence
of numbers ends when the sum of the current number and INCREMENT would
become greater than LAST. FIRST, INCREMENT, and LAST are interpreted as
floating point values. INCREMENT is usually positive if FIRST is smaller
than LAST, and INCREMENT is usually negative if FIRST is greater than LAST.
INCREMENT must not be 0; none of FIRST, INCREMENT and LAST may be NaN.
FORMAT must be suitable for printing one argument of type 'double'; it
defaults to %.PRECf if FIRST, INCREMENT, and LAST are all fixed point
decimal numbers with maximum precision PREC, and to %g otherwise.`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		opts     = seq.DefaultOptions()
		format   string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "seq [OPTION]... [FIRST [INCREMENT]] LAST",
		Short: "Print numbers from FIRST to LAST, in steps of INCREMENT.",
		Long:  long,

		Version: moduleVersion(),
		Args:    cobra.ArbitraryArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewNop()
			if logLevel != "" {
				level, err := logging.ParseLevel(logLevel)
				if err != nil {
					return &usageError{err}
				}

				logger = logging.New(stderr, level)
			}

			if cmd.Flags().Changed("format") {
				opts.Format = &format
			}

			s, err := seq.NewSpec(args, opts)
			if err != nil {
				logger.Debug("invalid arguments", "args", args, "error", err.Error())

				return err
			}

			precision := "none"
			if s.Precision != nil {
				precision = fmt.Sprint(*s.Precision)
			}

			logger.Debug("sequence",
				"first", s.First.String(),
				"increment", s.Increment.String(),
				"last", s.Last.String(),
				"precision", precision,
				"width", s.FieldWidth(),
				"custom_format", s.Format != nil,
			)

			err = seq.Print(stdout, s)
			if err != nil {
				logger.Debug("printing failed", "error", err.Error())

				return err
			}

			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.Separator, "separator", "s", opts.Separator, "use STRING to separate numbers")
	flags.StringVarP(&opts.Terminator, "terminator", "t", opts.Terminator, "use STRING to terminate the output")
	flags.BoolVarP(&opts.EqualWidth, "equal-width", "w", false, "equalize width by padding with leading zeroes")
	flags.StringVarP(&format, "format", "f", "", "use printf style floating-point FORMAT")

	flags.StringVar(&logLevel, "log-level", os.Getenv("SEQ_LOG_LEVEL"), "diagnostic log level written to stderr")
	_ = flags.MarkHidden("log-level")

	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	return cmd
}

// run executes seq with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)

	normalized, err := normalizeArgs(cmd.Flags(), args)
	if err == nil {
		cmd.SetArgs(normalized)
		err = cmd.Execute()
	}

	if err != nil {
		report(stderr, err)

		return 1
	}

	return 0
}

// report writes err to stderr the way coreutils do.
func report(stderr io.Writer, err error) {
	msg := err.Error()
	if !seq.Error.Has(err) {
		msg = "seq: " + msg
	}

	fmt.Fprintln(stderr, msg)

	var usage *usageError
	if errors.As(err, &usage) || seq.IsUsage(err) {
		fmt.Fprintln(stderr, "Try 'seq --help' for more information.")
	}
}
