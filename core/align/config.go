package align

import "fmt"

// Scoring holds the scored engine's per-column scores.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring is match=2, mismatch=-1, gap=-1.
var DefaultScoring = Scoring{Match: 2, Mismatch: -1, Gap: -1}

// DefaultMaxCells bounds the product of (len+1) over all sequences.
const DefaultMaxCells = 1 << 26

// Config controls engine construction.
type Config struct {
	// Scoring is used by the scored engine only. The zero value selects
	// DefaultScoring.
	Scoring Scoring
	// Workers > 1 fills the scored lattice one anti-diagonal at a time with
	// that many goroutines. Results are identical to the serial fill.
	Workers int
	// MaxCells caps the lattice / DP map size (0 = DefaultMaxCells).
	MaxCells int
}

func (c Config) scoring() Scoring {
	if c.Scoring == (Scoring{}) {
		return DefaultScoring
	}
	return c.Scoring
}

func (c Config) maxCells() int {
	if c.MaxCells <= 0 {
		return DefaultMaxCells
	}
	return c.MaxCells
}

// cellCount returns prod(len+1), failing once it passes limit.
func cellCount(lens []int, limit int) (int, error) {
	total := 1
	for _, l := range lens {
		d := l + 1
		if total > limit/d {
			return 0, fmt.Errorf("%w: lengths %v, limit %d", ErrLatticeTooLarge, lens, limit)
		}
		total *= d
	}
	if total > limit {
		return 0, fmt.Errorf("%w: %d cells, limit %d", ErrLatticeTooLarge, total, limit)
	}
	return total, nil
}
