// Package output streams delimited values to a writer.
//
// # Layout
//
// Values are joined by the separator and the whole stream is closed by the
// terminator. With separator "," and terminator "\n" three values produce:
//
//	| v1 | , | v2 | , | v3 | \n |
//
// The terminator is only written when at least one value was written, so an
// empty stream produces no bytes at all.
//
// Broken Pipes
//
// A reader closing its end of the pipe (head, less) surfaces as EPIPE from
// the writer. IsBrokenPipe identifies the condition so callers can stop
// without reporting an error.
package output
