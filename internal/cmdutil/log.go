// internal/cmdutil/log.go
package cmdutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

// NewLogger installs a JSON slog logger writing to w on ctx. verbose lowers
// the level from Warn to Debug.
func NewLogger(ctx context.Context, w io.Writer, verbose bool) context.Context {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return ctxlog.NewJSONLogger(ctx, w, &slog.HandlerOptions{Level: level})
}

// Warnf prints a plain user-facing warning line unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
