// core/sequence/sequence.go
package sequence

import (
	"errors"
	"fmt"
	"strings"
)

// Gap is the alignment gap marker. It may not appear in residues, otherwise
// a gapped row could not be mapped back to its sequence.
const Gap = '-'

var (
	ErrEmptyID       = errors.New("sequence: empty id")
	ErrEmptyResidues = errors.New("sequence: empty residues")
	ErrGapResidue    = errors.New("sequence: residues contain the gap marker '-'")
	ErrOutOfRange    = errors.New("sequence: index out of range")
)

// Sequence is an immutable id/label/residue holder. Residues may use any
// alphabet except the gap marker '-'. The zero value is not usable; build
// one with New.
type Sequence struct {
	id       string
	label    string
	residues []rune
}

// New validates and returns a Sequence. Residues are kept as given; callers
// that want case folding do it before calling New. Residues containing Gap
// are rejected with ErrGapResidue.
func New(id, label, residues string) (Sequence, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Sequence{}, ErrEmptyID
	}
	if residues == "" {
		return Sequence{}, fmt.Errorf("%s: %w", id, ErrEmptyResidues)
	}
	if i := strings.IndexRune(residues, Gap); i >= 0 {
		return Sequence{}, fmt.Errorf("%s: position %d: %w", id, i+1, ErrGapResidue)
	}
	return Sequence{id: id, label: label, residues: []rune(residues)}, nil
}

// MustNew is New for literals in tests and examples; it panics on error.
func MustNew(id, label, residues string) Sequence {
	s, err := New(id, label, residues)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Sequence) ID() string    { return s.id }
func (s Sequence) Label() string { return s.label }

// Len returns the number of residues.
func (s Sequence) Len() int { return len(s.residues) }

// At returns the residue at 0-based position i.
func (s Sequence) At(i int) (rune, error) {
	if i < 0 || i >= len(s.residues) {
		return 0, fmt.Errorf("%s: index %d not in [0,%d): %w", s.id, i, len(s.residues), ErrOutOfRange)
	}
	return s.residues[i], nil
}

// Residues returns the residues as a string.
func (s Sequence) Residues() string { return string(s.residues) }

// Runes returns a copy of the residues.
func (s Sequence) Runes() []rune { return append([]rune(nil), s.residues...) }

func (s Sequence) String() string {
	return fmt.Sprintf("> Id: %s\n> Label: %s\n> Residues: %s\n", s.id, s.label, string(s.residues))
}
