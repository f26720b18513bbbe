package align

import (
	"errors"
	"fmt"
)

var (
	ErrSequenceCount   = errors.New("align: unsupported number of sequences")
	ErrLatticeTooLarge = errors.New("align: lattice exceeds the cell limit")
	ErrInvariant       = errors.New("align: internal invariant violated")
)

// InvariantError reports a cell for which traceback could not find any
// predecessor reproducing the stored value. It always indicates a defect in
// the recurrence or the traceback and is never recovered from.
type InvariantError struct {
	Engine string
	Cell   []int
	Value  int32
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("align: %s traceback: no predecessor reproduces cell %v (value %d)", e.Engine, e.Cell, e.Value)
}

func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }
