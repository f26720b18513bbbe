// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"lcsalign/internal/version"
)

// Usage installs the help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – exact multiple sequence alignment\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [flags] [FASTA ...]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable) or '-' for STDIN; globs allowed as positionals")
		fmt.Fprintln(out, "      --ids a,b,c             Align only these ids, in this order (default: all, file order)")

		fmt.Fprintln(out, "\nEngine:")
		fmt.Fprintf(out, "      --mode string           auto (scored for 2-3 sequences, lcs beyond) | scored | lcs [%s]\n", def("mode"))
		fmt.Fprintf(out, "      --match int             Score for an all-identical column [%s]\n", def("match"))
		fmt.Fprintf(out, "      --mismatch int          Score for a mismatched column [%s]\n", def("mismatch"))
		fmt.Fprintf(out, "      --gap int               Score for a column with gaps [%s]\n", def("gap"))
		fmt.Fprintf(out, "      --workers int           Wavefront fill goroutines, scored engine (0/1=serial) [%s]\n", def("workers"))
		fmt.Fprintf(out, "      --max-cells int         Largest DP lattice allowed [%s]\n", def("max-cells"))
		fmt.Fprintln(out, "      --config file           YAML config (flags > LCSALIGN_* env > file > defaults)")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | yaml | fasta [%s]\n", def("output"))
		fmt.Fprintf(out, "      --pretty                Conservation block (text) [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --width int             Block / FASTA line width [%s]\n", def("width"))
		fmt.Fprintf(out, "      --pairwise              Pairwise LCS length matrix [%s]\n", def("pairwise"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --verbose               Debug JSON logs on STDERR [%s]\n", def("verbose"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
