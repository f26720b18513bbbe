// core/align/scored.go
package align

import (
	"fmt"

	"lcsalign-core/sequence"
)

// variant is one arity of the scored engine. The lattice is built and
// filled once; traceback and length only read it.
type variant interface {
	build(limit int) error
	fill(workers int) error
	length() int
	traceback() ([][]rune, error)
}

// Scored is the exact scored global aligner for 2 or 3 sequences.
type Scored struct {
	seqs []sequence.Sequence
	v    variant
}

// NewScored builds and fills the lattice for seqs. Two sequences select the
// pairwise matrix, three the tensor; any other count is an error.
func NewScored(cfg Config, seqs ...sequence.Sequence) (*Scored, error) {
	if err := checkSequences(seqs); err != nil {
		return nil, err
	}
	sc := cfg.scoring()
	var v variant
	switch len(seqs) {
	case 2:
		v = &pairwise{a: seqs[0].Runes(), b: seqs[1].Runes(), sc: sc}
	case 3:
		v = &triple{a: seqs[0].Runes(), b: seqs[1].Runes(), c: seqs[2].Runes(), sc: sc}
	default:
		return nil, fmt.Errorf("%w: scored engine takes 2 or 3 sequences, got %d", ErrSequenceCount, len(seqs))
	}
	if err := v.build(cfg.maxCells()); err != nil {
		return nil, err
	}
	if err := v.fill(cfg.Workers); err != nil {
		return nil, err
	}
	return &Scored{seqs: append([]sequence.Sequence(nil), seqs...), v: v}, nil
}

// Length returns the optimal score, ie. the terminal lattice cell. It is not
// necessarily the column score of the alignment Align returns: once the
// traceback reaches a zero index it drains the remaining residues one per
// column instead of following the face recurrence.
func (s *Scored) Length() int { return s.v.length() }

// Align reconstructs the optimal alignment. An *InvariantError is returned
// if the lattice and traceback disagree.
func (s *Scored) Align() (*Result, error) {
	rows, err := s.v.traceback()
	if err != nil {
		return nil, err
	}
	return newResult(s.seqs, rows), nil
}

// checkSequences rejects zero-value sequences that bypassed sequence.New.
func checkSequences(seqs []sequence.Sequence) error {
	for i, s := range seqs {
		if s.ID() == "" {
			return fmt.Errorf("sequence %d: %w", i+1, sequence.ErrEmptyID)
		}
		if s.Len() == 0 {
			return fmt.Errorf("%s: %w", s.ID(), sequence.ErrEmptyResidues)
		}
	}
	return nil
}

func (sc Scoring) pair(a, b rune) int32 {
	if a == b {
		return int32(sc.Match)
	}
	return int32(sc.Mismatch)
}

func (sc Scoring) trio(a, b, c rune) int32 {
	if a == b && b == c {
		return int32(sc.Match)
	}
	return int32(sc.Mismatch)
}

func fillWith(l *lattice, workers int, cell cellFunc) error {
	if workers > 1 {
		return l.fillWavefront(workers, cell)
	}
	l.fill(cell)
	return nil
}

// columns accumulates alignment columns during traceback, which walks from
// the end, and emits the rows in forward order.
type columns struct {
	rows [][]rune
}

func newColumns(n, capacity int) *columns {
	c := &columns{rows: make([][]rune, n)}
	for i := range c.rows {
		c.rows[i] = make([]rune, 0, capacity)
	}
	return c
}

func (c *columns) push(col ...rune) {
	for i, r := range col {
		c.rows[i] = append(c.rows[i], r)
	}
}

func (c *columns) forward() [][]rune {
	for _, r := range c.rows {
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
	}
	return c.rows
}
