// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"lcsalign/internal/pretty"
)

// TextOptions select the optional text sections.
type TextOptions struct {
	Pretty        bool
	PrettyOptions pretty.Options
	Pairwise      bool
}

// WriteText prints the alignment report, then the engine summary and any
// optional sections, each separated by a blank line.
func WriteText(w io.Writer, r Report, opt TextOptions) error {
	var b strings.Builder
	b.WriteString(r.Result.Report())
	switch {
	case r.Scoring != nil:
		fmt.Fprintf(&b, "> Engine = %s (match %d, mismatch %d, gap %d), optimal score = %d\n",
			r.Engine, r.Scoring.Match, r.Scoring.Mismatch, r.Scoring.Gap, r.Length)
	default:
		fmt.Fprintf(&b, "> Engine = %s, LCS = %s (length %d)\n", r.Engine, r.LCS, r.Length)
	}
	if opt.Pretty {
		b.WriteString("\n")
		b.WriteString(pretty.RenderBlock(r.Result, opt.PrettyOptions))
	}
	if opt.Pairwise && len(r.Pairwise) > 0 {
		b.WriteString("\n")
		writePairwise(&b, r.Result.IDs, r.Pairwise)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writePairwise(b *strings.Builder, ids []string, m [][]int) {
	b.WriteString("> Pairwise LCS lengths\n")
	idw, cw := 0, 1
	for _, id := range ids {
		idw = max(idw, utf8.RuneCountInString(id))
		cw = max(cw, utf8.RuneCountInString(id))
	}
	for _, row := range m {
		for _, v := range row {
			cw = max(cw, len(fmt.Sprint(v)))
		}
	}
	b.WriteString(strings.Repeat(" ", idw))
	for _, id := range ids {
		fmt.Fprintf(b, "  %*s", cw, id)
	}
	b.WriteString("\n")
	for i, row := range m {
		fmt.Fprintf(b, "%-*s", idw, ids[i])
		for _, v := range row {
			fmt.Fprintf(b, "  %*d", cw, v)
		}
		b.WriteString("\n")
	}
}
