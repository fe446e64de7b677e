package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("logging")

// New creates the command logger writing to w, normally stderr so that log
// records never mix with the sequence on stdout. The "error" key is renamed
// to "err".
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel parses a level name such as "debug" or "warn+2". The empty
// string selects the error level.
func ParseLevel(s string) (level slog.Level, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelError, nil
	}

	err = level.UnmarshalText([]byte(s))
	if err != nil {
		return slog.LevelError, Error.New("unknown level %q", s)
	}

	return level, nil
}
