// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"lcsalign-core/align"
	"lcsalign/internal/cliutil"
	"lcsalign/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string
	IDs      []string

	// Engine
	Mode       string
	Match      int
	Mismatch   int
	Gap        int
	ConfigFile string
	Workers    int
	MaxCells   int

	// Output
	Output   string
	Pretty   bool
	Width    int
	Pairwise bool

	// Misc
	Verbose bool
	Quiet   bool
	Version bool

	set map[string]bool
}

// aliases maps shorthand flags to their long names.
var aliases = map[string]string{
	"s": "sequences",
	"o": "output",
	"q": "quiet",
	"v": "version",
}

// IsSet reports whether the long flag name (or its shorthand) was given on
// the command line. Only explicitly set flags override the config file and
// the environment.
func (o Options) IsSet(name string) bool { return o.set[name] }

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires every flag onto fs. Flag defaults are config.Defaults().
func Register(fs *flag.FlagSet, o *Options) {
	d := config.Defaults()

	seqVal := &sliceValue{dst: &o.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")
	fs.Func("ids", "comma-separated ids to align, in order (default: all)", func(v string) error {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				o.IDs = append(o.IDs, id)
			}
		}
		return nil
	})

	fs.StringVar(&o.Mode, "mode", d.Mode, "engine: auto | scored | lcs")
	fs.IntVar(&o.Match, "match", d.Scoring.Match, "score for an all-identical column (scored engine)")
	fs.IntVar(&o.Mismatch, "mismatch", d.Scoring.Mismatch, "score for a mismatched column (scored engine)")
	fs.IntVar(&o.Gap, "gap", d.Scoring.Gap, "score for a column with gaps (scored engine)")
	fs.StringVar(&o.ConfigFile, "config", "", "YAML config file")
	fs.IntVar(&o.Workers, "workers", d.Workers, "wavefront fill goroutines for the scored engine (0/1 = serial)")
	fs.IntVar(&o.MaxCells, "max-cells", d.MaxCells, "largest DP lattice allowed (0 = built-in limit)")

	fs.StringVar(&o.Output, "output", d.Output, "output: text | json | jsonl | yaml | fasta")
	fs.StringVar(&o.Output, "o", d.Output, "alias of --output")
	fs.BoolVar(&o.Pretty, "pretty", false, "conservation block (text)")
	fs.IntVar(&o.Width, "width", d.Width, "block / FASTA line width (0 = unwrapped FASTA)")
	fs.BoolVar(&o.Pairwise, "pairwise", false, "pairwise LCS length matrix")

	fs.BoolVar(&o.Verbose, "verbose", false, "debug JSON logs on stderr")
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
}

// ParseArgs registers and parses all flags and returns an Options struct.
// Positionals are FASTA paths; globs among them are expanded.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	Register(fs, &opt)
	fs.BoolVar(&help, "h", false, "show this help message")
	fs.BoolVar(&help, "help", false, "show this help message")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		opt.set[name] = true
	})
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.SeqFiles = append(opt.SeqFiles, exp...)
	}
	return opt, Validate(opt)
}

// Validate applies the flag-level invariants. Values from the config file
// and environment are checked separately by config.Validate.
func Validate(o Options) error {
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one FASTA input is required")
	}
	if o.IsSet("mode") {
		if _, err := align.ParseMode(o.Mode); err != nil {
			return err
		}
	}
	if o.Workers < 0 {
		return errors.New("--workers must be ≥ 0")
	}
	if o.MaxCells < 0 {
		return errors.New("--max-cells must be ≥ 0")
	}
	if o.Width < 0 {
		return errors.New("--width must be ≥ 0")
	}
	seen := map[string]bool{}
	for _, id := range o.IDs {
		if seen[id] {
			return fmt.Errorf("--ids lists %q twice", id)
		}
		seen[id] = true
	}
	return nil
}

// Apply overlays the explicitly set flags on cfg.
func (o Options) Apply(cfg *config.Config) {
	if o.IsSet("mode") {
		cfg.Mode = o.Mode
	}
	if o.IsSet("match") {
		cfg.Scoring.Match = o.Match
	}
	if o.IsSet("mismatch") {
		cfg.Scoring.Mismatch = o.Mismatch
	}
	if o.IsSet("gap") {
		cfg.Scoring.Gap = o.Gap
	}
	if o.IsSet("workers") {
		cfg.Workers = o.Workers
	}
	if o.IsSet("max-cells") {
		cfg.MaxCells = o.MaxCells
	}
	if o.IsSet("output") {
		cfg.Output = o.Output
	}
	if o.IsSet("width") {
		cfg.Width = o.Width
	}
}
