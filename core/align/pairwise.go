package align

import "lcsalign-core/sequence"

const gap = sequence.Gap

// pairwise is the k=2 scored matrix.
type pairwise struct {
	a, b []rune
	sc   Scoring
	lat  *lattice
}

func (p *pairwise) build(limit int) error {
	l, err := newLattice([]int{len(p.a), len(p.b)}, limit)
	p.lat = l
	return err
}

func (p *pairwise) fill(workers int) error { return fillWith(p.lat, workers, p.cell) }

func (p *pairwise) length() int { return int(p.lat.terminal()) }

func (p *pairwise) cell(i, j, _ int) int32 {
	g := int32(p.sc.Gap)
	switch {
	case i == 0 && j == 0:
		return 0
	case i == 0:
		return p.lat.at(0, j-1, 0) + g
	case j == 0:
		return p.lat.at(i-1, 0, 0) + g
	}
	return max(
		p.lat.at(i-1, j-1, 0)+p.sc.pair(p.a[i-1], p.b[j-1]),
		p.lat.at(i-1, j, 0)+g,
		p.lat.at(i, j-1, 0)+g,
	)
}

func (p *pairwise) traceback() ([][]rune, error) {
	i, j := len(p.a), len(p.b)
	g := int32(p.sc.Gap)
	cols := newColumns(2, i+j)
	for i > 0 && j > 0 {
		v := p.lat.at(i, j, 0)
		a, b := p.a[i-1], p.b[j-1]
		switch {
		case v == p.lat.at(i-1, j-1, 0)+p.sc.pair(a, b):
			cols.push(a, b)
			i, j = i-1, j-1
		case v == p.lat.at(i-1, j, 0)+g:
			cols.push(a, gap)
			i--
		case v == p.lat.at(i, j-1, 0)+g:
			cols.push(gap, b)
			j--
		default:
			return nil, &InvariantError{Engine: "pairwise", Cell: []int{i, j}, Value: v}
		}
	}
	for ; i > 0; i-- {
		cols.push(p.a[i-1], gap)
	}
	for ; j > 0; j-- {
		cols.push(gap, p.b[j-1])
	}
	return cols.forward(), nil
}
