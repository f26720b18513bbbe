// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"

	"lcsalign-core/align"
	"lcsalign-core/fasta"
	"lcsalign-core/sequence"
	"lcsalign/internal/appshell"
	"lcsalign/internal/cmdutil"
	"lcsalign/internal/config"
	"lcsalign/internal/output"
	"lcsalign/internal/pretty"
	"lcsalign/internal/writers"
)

// Options is a fully resolved run: inputs, the layered config and the
// output switches that are not part of the config file.
type Options struct {
	SeqFiles []string
	IDs      []string
	Config   config.Config

	Pretty   bool
	Pairwise bool
	Quiet    bool
}

// Run loads the sequences, aligns them and writes the report. It returns the
// process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	outw := bufio.NewWriter(stdout)
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	log := ctxlog.Logger(ctx)

	if err := o.Config.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: invalid configuration:\n%v\n", err)
		return appshell.ExitUsage
	}
	if !writers.Has(o.Config.Output) {
		fmt.Fprintf(stderr, "error: invalid output %q (want %s)\n", o.Config.Output, strings.Join(writers.Formats(), " | "))
		return appshell.ExitUsage
	}

	seqs, err := load(ctx, o.SeqFiles, o.IDs)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return appshell.ExitCancelled
		}
		fmt.Fprintln(stderr, err)
		return appshell.ExitUsage
	}
	if len(seqs) < 2 {
		fmt.Fprintf(stderr, "error: need at least 2 sequences to align, got %d\n", len(seqs))
		return appshell.ExitUsage
	}

	mode, acfg := o.Config.Align()
	engine := mode.Resolve(len(seqs))
	if engine == align.ModeLCS && acfg.Workers > 1 {
		cmdutil.Warnf(stderr, o.Quiet, "--workers only applies to the scored engine; the lcs engine runs serially")
	}
	lens := make([]int, len(seqs))
	for i, s := range seqs {
		lens[i] = s.Len()
	}
	log.Debug("aligning", "engine", engine, "sequences", len(seqs), "lengths", lens, "workers", acfg.Workers)

	start := time.Now()
	rep, err := alignAll(ctx, engine, acfg, seqs, o.Pairwise)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return appshell.ExitCancelled
		case errors.Is(err, align.ErrSequenceCount), errors.Is(err, align.ErrLatticeTooLarge):
			fmt.Fprintln(stderr, err)
			return appshell.ExitUsage
		}
		fmt.Fprintln(stderr, err)
		return appshell.ExitOutput
	}
	log.Debug("aligned", "elapsed", time.Since(start), "columns", rep.Result.Len(), "score", rep.Result.Score, "length", rep.Length)

	payload := writers.Payload{
		Report:        rep,
		Pretty:        o.Pretty,
		PrettyOptions: pretty.Options{Width: o.Config.Width, MatchGlyph: pretty.DefaultOptions.MatchGlyph, ShowCounts: true},
		Pairwise:      o.Pairwise,
		Width:         o.Config.Width,
	}
	if werr := writers.Write(o.Config.Output, outw, payload); writers.IsBrokenPipe(werr) {
		return appshell.ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return appshell.ExitOutput
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appshell.ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return appshell.ExitOutput
	}
	return appshell.ExitOK
}

func load(ctx context.Context, files, ids []string) ([]sequence.Sequence, error) {
	st, err := fasta.LoadStore(ctx, files...)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return st.All(), nil
	}
	return st.Select(ids...)
}

// alignAll runs the engine off the calling goroutine so that cancellation
// returns promptly; the engines themselves are not interruptible.
func alignAll(ctx context.Context, engine align.Mode, cfg align.Config, seqs []sequence.Sequence, pairwise bool) (output.Report, error) {
	type result struct {
		rep output.Report
		err error
	}
	done := make(chan result, 1)
	go func() {
		rep, err := alignSync(engine, cfg, seqs, pairwise)
		done <- result{rep, err}
	}()
	select {
	case <-ctx.Done():
		return output.Report{}, ctx.Err()
	case r := <-done:
		return r.rep, r.err
	}
}

func alignSync(engine align.Mode, cfg align.Config, seqs []sequence.Sequence, pairwise bool) (output.Report, error) {
	a, err := align.New(engine, cfg, seqs...)
	if err != nil {
		return output.Report{}, err
	}
	res, err := a.Align()
	if err != nil {
		return output.Report{}, err
	}
	if err := res.Verify(seqs...); err != nil {
		return output.Report{}, err
	}
	rep := output.Report{Engine: engine, Length: a.Length(), Result: res}
	switch e := a.(type) {
	case *align.Scored:
		sc := cfg.Scoring
		rep.Scoring = &sc
	case *align.LCS:
		rep.LCS = e.LCS()
	}
	if pairwise {
		rep.Pairwise = align.PairwiseLCS(seqs...)
	}
	return rep, nil
}
