package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Process exit codes shared by every entry point.
const (
	ExitOK        = 0
	ExitUsage     = 2 // bad flags, config or input
	ExitOutput    = 3 // output or internal failure
	ExitCancelled = 130
)

// RunFunc is an entry point: argv without the program name, and the
// process streams.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with a context cancelled on SIGINT/SIGTERM and exits with its
// code. No arguments at all means -h.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == ExitOK {
		code = ExitCancelled
	}

	stop()
	os.Exit(code)
}
