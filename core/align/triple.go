package align

// triple is the k=3 scored tensor.
type triple struct {
	a, b, c []rune
	sc      Scoring
	lat     *lattice
}

func (t *triple) build(limit int) error {
	l, err := newLattice([]int{len(t.a), len(t.b), len(t.c)}, limit)
	t.lat = l
	return err
}

func (t *triple) fill(workers int) error { return fillWith(t.lat, workers, t.cell) }

func (t *triple) length() int { return int(t.lat.terminal()) }

func (t *triple) cell(i, j, k int) int32 {
	g := int32(t.sc.Gap)
	l := t.lat
	switch {
	case i == 0 && j == 0 && k == 0:
		return 0

	// axes: cumulative gap penalty
	case j == 0 && k == 0:
		return l.at(i-1, 0, 0) + g
	case i == 0 && k == 0:
		return l.at(0, j-1, 0) + g
	case i == 0 && j == 0:
		return l.at(0, 0, k-1) + g

	// faces: pairwise recurrence over the two non-zero axes
	case k == 0:
		return max(l.at(i-1, j-1, 0)+t.sc.pair(t.a[i-1], t.b[j-1]), l.at(i-1, j, 0)+g, l.at(i, j-1, 0)+g)
	case j == 0:
		return max(l.at(i-1, 0, k-1)+t.sc.pair(t.a[i-1], t.c[k-1]), l.at(i-1, 0, k)+g, l.at(i, 0, k-1)+g)
	case i == 0:
		return max(l.at(0, j-1, k-1)+t.sc.pair(t.b[j-1], t.c[k-1]), l.at(0, j-1, k)+g, l.at(0, j, k-1)+g)
	}
	return max(
		l.at(i-1, j-1, k-1)+t.sc.trio(t.a[i-1], t.b[j-1], t.c[k-1]),
		l.at(i-1, j, k)+g,
		l.at(i, j-1, k)+g,
		l.at(i, j, k-1)+g,
		l.at(i-1, j-1, k)+g,
		l.at(i-1, j, k-1)+g,
		l.at(i, j-1, k-1)+g,
	)
}

func (t *triple) traceback() ([][]rune, error) {
	i, j, k := len(t.a), len(t.b), len(t.c)
	g := int32(t.sc.Gap)
	l := t.lat
	cols := newColumns(3, i+j+k)
	for i > 0 && j > 0 && k > 0 {
		v := l.at(i, j, k)
		a, b, c := t.a[i-1], t.b[j-1], t.c[k-1]
		switch {
		case v == l.at(i-1, j-1, k-1)+t.sc.trio(a, b, c):
			cols.push(a, b, c)
			i, j, k = i-1, j-1, k-1
		case v == l.at(i-1, j, k)+g:
			cols.push(a, gap, gap)
			i--
		case v == l.at(i, j-1, k)+g:
			cols.push(gap, b, gap)
			j--
		case v == l.at(i, j, k-1)+g:
			cols.push(gap, gap, c)
			k--
		case v == l.at(i-1, j-1, k)+g:
			cols.push(a, b, gap)
			i, j = i-1, j-1
		case v == l.at(i-1, j, k-1)+g:
			cols.push(a, gap, c)
			i, k = i-1, k-1
		case v == l.at(i, j-1, k-1)+g:
			cols.push(gap, b, c)
			j, k = j-1, k-1
		default:
			return nil, &InvariantError{Engine: "triple", Cell: []int{i, j, k}, Value: v}
		}
	}
	// One sequence is exhausted: drain the others one residue per column,
	// in ascending sequence order.
	for ; i > 0; i-- {
		cols.push(t.a[i-1], gap, gap)
	}
	for ; j > 0; j-- {
		cols.push(gap, t.b[j-1], gap)
	}
	for ; k > 0; k-- {
		cols.push(gap, gap, t.c[k-1])
	}
	return cols.forward(), nil
}
