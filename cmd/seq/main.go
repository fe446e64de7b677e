package main

import (
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// With SIGPIPE notified, writes to a closed stdout fail with EPIPE
	// instead of terminating the process.
	signal.Notify(make(chan os.Signal, 1), syscall.SIGPIPE)

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
