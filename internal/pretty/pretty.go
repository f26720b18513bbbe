package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"lcsalign-core/align"
	"lcsalign-core/sequence"
)

// Options control the conservation block rendering.
type Options struct {
	// Residues per block line. If <=0, use default (60).
	Width int

	// Glyph under all-identical columns; default "*".
	MatchGlyph string

	// Append the running residue count (gaps excluded) to each line.
	ShowCounts bool
}

// DefaultOptions mirrors the familiar Clustal layout.
var DefaultOptions = Options{
	Width:      60,
	MatchGlyph: "*",
	ShowCounts: true,
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultOptions.Width
	}
	return o.Width
}

func (o Options) MatchGlyphOrDefault() string {
	if o.MatchGlyph == "" {
		return DefaultOptions.MatchGlyph
	}
	return o.MatchGlyph
}

const idGap = 2

// RenderBlock prints the alignment wrapped into blocks of opt.Width columns.
// Each block has one line per row (id, residues, running count) followed by
// a marker line; blocks are separated by a blank line.
func RenderBlock(res *align.Result, opt Options) string {
	if res == nil || len(res.Aligned) == 0 {
		return ""
	}
	rows := make([][]rune, len(res.Aligned))
	for i, a := range res.Aligned {
		rows[i] = []rune(a)
	}
	ids := make([]string, len(rows))
	idw := 0
	for i := range rows {
		ids[i] = fmt.Sprintf("%d", i+1)
		if i < len(res.IDs) && res.IDs[i] != "" {
			ids[i] = res.IDs[i]
		}
		idw = max(idw, utf8.RuneCountInString(ids[i]))
	}
	marks := make([]bool, len(rows[0]))
	for _, c := range res.IdenticalColumns() {
		marks[c-1] = true
	}

	w := opt.width()
	glyph := opt.MatchGlyphOrDefault()
	counts := make([]int, len(rows))
	pad := strings.Repeat(" ", idw+idGap)

	var b strings.Builder
	for lo := 0; lo < len(rows[0]); lo += w {
		hi := min(lo+w, len(rows[0]))
		if lo > 0 {
			b.WriteByte('\n')
		}
		for i, row := range rows {
			seg := row[lo:hi]
			for _, r := range seg {
				if r != sequence.Gap {
					counts[i]++
				}
			}
			fmt.Fprintf(&b, "%s%s%s", ids[i], strings.Repeat(" ", idw-utf8.RuneCountInString(ids[i])+idGap), string(seg))
			if opt.ShowCounts {
				fmt.Fprintf(&b, "%s%d", strings.Repeat(" ", idGap), counts[i])
			}
			b.WriteByte('\n')
		}
		var m strings.Builder
		m.WriteString(pad)
		for c := lo; c < hi; c++ {
			if marks[c] {
				m.WriteString(glyph)
			} else {
				m.WriteByte(' ')
			}
		}
		b.WriteString(strings.TrimRight(m.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
