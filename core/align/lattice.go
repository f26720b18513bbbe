package align

import (
	"cloudeng.io/sync/errgroup"
)

// lattice is a dense score table stored in a single flat buffer. It is
// always addressed with three coordinates; a pairwise lattice has a third
// dimension of size 1 and callers pass k == 0.
type lattice struct {
	dims   [3]int // len+1 per axis
	stride [2]int // stride of axis 0 and 1; axis 2 has stride 1
	cells  []int32
}

func newLattice(lens []int, limit int) (*lattice, error) {
	n, err := cellCount(lens, limit)
	if err != nil {
		return nil, err
	}
	l := &lattice{dims: [3]int{1, 1, 1}}
	for i, v := range lens {
		l.dims[i] = v + 1
	}
	l.stride[1] = l.dims[2]
	l.stride[0] = l.dims[1] * l.dims[2]
	l.cells = make([]int32, n)
	return l, nil
}

func (l *lattice) offset(i, j, k int) int { return i*l.stride[0] + j*l.stride[1] + k }

func (l *lattice) at(i, j, k int) int32 { return l.cells[l.offset(i, j, k)] }

func (l *lattice) set(i, j, k int, v int32) { l.cells[l.offset(i, j, k)] = v }

// terminal returns the value at full lengths.
func (l *lattice) terminal() int32 { return l.cells[len(l.cells)-1] }

// cellFunc computes the value of one cell from cells whose coordinates are
// component-wise <= its own.
type cellFunc func(i, j, k int) int32

// fill evaluates every cell in lexicographic order, which visits every
// predecessor first.
func (l *lattice) fill(cell cellFunc) {
	for i := 0; i < l.dims[0]; i++ {
		for j := 0; j < l.dims[1]; j++ {
			for k := 0; k < l.dims[2]; k++ {
				l.set(i, j, k, cell(i, j, k))
			}
		}
	}
}

// minCellsPerWorker keeps short anti-diagonals on the calling goroutine.
const minCellsPerWorker = 256

// fillWavefront evaluates one anti-diagonal (constant i+j+k) at a time.
// Cells on a diagonal only read earlier diagonals, so each diagonal is split
// across workers and joined before the next one starts.
func (l *lattice) fillWavefront(workers int, cell cellFunc) error {
	last := l.dims[0] + l.dims[1] + l.dims[2] - 3
	var diag [][3]int
	for d := 0; d <= last; d++ {
		diag = l.antiDiagonal(d, diag[:0])
		if workers <= 1 || len(diag) < 2*minCellsPerWorker {
			for _, c := range diag {
				l.set(c[0], c[1], c[2], cell(c[0], c[1], c[2]))
			}
			continue
		}
		per := (len(diag) + workers - 1) / workers
		if per < minCellsPerWorker {
			per = minCellsPerWorker
		}
		g := &errgroup.T{}
		for lo := 0; lo < len(diag); lo += per {
			part := diag[lo:min(lo+per, len(diag))]
			g.Go(func() error {
				for _, c := range part {
					l.set(c[0], c[1], c[2], cell(c[0], c[1], c[2]))
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

// antiDiagonal appends the coordinates with i+j+k == d to buf.
func (l *lattice) antiDiagonal(d int, buf [][3]int) [][3]int {
	for i := max(0, d-(l.dims[1]-1)-(l.dims[2]-1)); i <= min(d, l.dims[0]-1); i++ {
		rest := d - i
		for j := max(0, rest-(l.dims[2]-1)); j <= min(rest, l.dims[1]-1); j++ {
			buf = append(buf, [3]int{i, j, rest - j})
		}
	}
	return buf
}
