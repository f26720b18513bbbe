// core/align/result.go
package align

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"lcsalign-core/sequence"
)

// Result is the only artifact an engine leaves behind: one gapped row per
// input sequence, all of the same length.
type Result struct {
	IDs     []string
	Labels  []string
	Aligned []string
	// Score is the number of columns where every row holds the same
	// non-gap residue.
	Score int
}

func newResult(seqs []sequence.Sequence, rows [][]rune) *Result {
	r := &Result{
		IDs:     make([]string, len(seqs)),
		Labels:  make([]string, len(seqs)),
		Aligned: make([]string, len(rows)),
	}
	for i, s := range seqs {
		r.IDs[i] = s.ID()
		r.Labels[i] = s.Label()
	}
	for i, row := range rows {
		r.Aligned[i] = string(row)
	}
	r.Score = len(identical(rows))
	return r
}

// identical returns the 0-based indices of the all-identical non-gap columns.
func identical(rows [][]rune) []int {
	if len(rows) == 0 {
		return nil
	}
	var out []int
	for c, r := range rows[0] {
		if r == gap {
			continue
		}
		same := true
		for _, row := range rows[1:] {
			if row[c] != r {
				same = false
				break
			}
		}
		if same {
			out = append(out, c)
		}
	}
	return out
}

func (r *Result) rows() [][]rune {
	rows := make([][]rune, len(r.Aligned))
	for i, a := range r.Aligned {
		rows[i] = []rune(a)
	}
	return rows
}

// Len returns the number of alignment columns.
func (r *Result) Len() int {
	if len(r.Aligned) == 0 {
		return 0
	}
	return utf8.RuneCountInString(r.Aligned[0])
}

// Identity returns Score as a percentage of the alignment length.
func (r *Result) Identity() float64 {
	n := r.Len()
	if n == 0 {
		return 0
	}
	return float64(r.Score) / float64(n) * 100
}

// IdenticalColumns returns the 1-based positions counted by Score.
func (r *Result) IdenticalColumns() []int {
	cols := identical(r.rows())
	for i := range cols {
		cols[i]++
	}
	return cols
}

// Verify checks the alignment invariants against the input sequences: rows
// have equal length, each row stripped of gaps is its sequence, no column is
// all gaps, and Score counts the all-identical columns.
func (r *Result) Verify(seqs ...sequence.Sequence) error {
	if len(seqs) != len(r.Aligned) {
		return fmt.Errorf("%w: %d rows for %d sequences", ErrInvariant, len(r.Aligned), len(seqs))
	}
	n := r.Len()
	for i, a := range r.Aligned {
		if l := utf8.RuneCountInString(a); l != n {
			return fmt.Errorf("%w: row %d has %d columns, row 1 has %d", ErrInvariant, i+1, l, n)
		}
		if got := strings.ReplaceAll(a, string(gap), ""); got != seqs[i].Residues() {
			return fmt.Errorf("%w: row %d does not reproduce %s", ErrInvariant, i+1, seqs[i].ID())
		}
	}
	rows := r.rows()
	for c := 0; c < n; c++ {
		if allGaps(rows, c) {
			return fmt.Errorf("%w: column %d is all gaps", ErrInvariant, c+1)
		}
	}
	if want := len(identical(rows)); r.Score != want {
		return fmt.Errorf("%w: score %d, %d identical columns", ErrInvariant, r.Score, want)
	}
	return nil
}

func allGaps(rows [][]rune, c int) bool {
	for _, row := range rows {
		if row[c] != gap {
			return false
		}
	}
	return true
}

// WriteReport writes the human-readable summary: spaced rows, alignment
// length, identical positions and identity.
func (r *Result) WriteReport(w io.Writer) error {
	var b strings.Builder
	for i, a := range r.Aligned {
		name := strconv.Itoa(i + 1)
		if i < len(r.IDs) {
			name += " (" + r.IDs[i] + ")"
		}
		fmt.Fprintf(&b, "> Sequence %s: %s\n", name, spaced(a))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "> Alignment length = %d\n", r.Len())
	pos := r.IdenticalColumns()
	strs := make([]string, len(pos))
	for i, p := range pos {
		strs[i] = strconv.Itoa(p)
	}
	fmt.Fprintf(&b, "> Identical positions (✓): %s → total = %d\n", strings.Join(strs, ", "), r.Score)
	fmt.Fprintf(&b, "> Identity = (%d ÷ %d) × 100 ≈ %.2f%%\n", r.Score, r.Len(), r.Identity())
	_, err := io.WriteString(w, b.String())
	return err
}

// Report returns WriteReport's output as a string.
func (r *Result) Report() string {
	var b strings.Builder
	_ = r.WriteReport(&b)
	return b.String()
}

func spaced(s string) string {
	var b strings.Builder
	for i, c := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	return b.String()
}
