// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"cloudeng.io/logging/ctxlog"

	"lcsalign/internal/appcore"
	"lcsalign/internal/appshell"
	"lcsalign/internal/cli"
	"lcsalign/internal/cmdutil"
	"lcsalign/internal/config"
	"lcsalign/internal/version"
	"lcsalign/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("lcsalign")
	fs.SetOutput(io.Discard)

	// flush writes what is buffered in outw and maps the result to an exit code.
	flush := func(code int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return appshell.ExitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return appshell.ExitOutput
		}
		return code
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(appshell.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(appshell.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(appshell.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "lcsalign version %s\n", version.Version)
		return flush(appshell.ExitOK)
	}

	ctx := cmdutil.NewLogger(parent, stderr, opts.Verbose)
	cfg, err := config.Load(ctx, opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appshell.ExitUsage
	}
	opts.Apply(&cfg)
	ctxlog.Logger(ctx).Debug("configuration", "file", opts.ConfigFile, "config", cfg)

	return appcore.Run(ctx, stdout, stderr, appcore.Options{
		SeqFiles: opts.SeqFiles,
		IDs:      opts.IDs,
		Config:   cfg,
		Pretty:   opts.Pretty,
		Pairwise: opts.Pairwise,
		Quiet:    opts.Quiet,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
