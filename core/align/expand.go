package align

import "slices"

// expand turns an LCS into an equal-length gapped alignment.
//
// Each LCS residue is an anchor. For every anchor, each sequence is walked
// from its cursor to the next occurrence of the anchor residue; the residues
// skipped form that sequence's run. Runs are emitted by interleave, then the
// anchor column is appended. Whatever follows the last anchor is emitted as
// a final set of runs in the same way.
func expand(seqs [][]rune, anchors []rune) ([][]rune, error) {
	n := len(seqs)
	rows := make([][]rune, n)
	for s := range rows {
		rows[s] = make([]rune, 0, len(seqs[s])+len(seqs[s])/2)
	}
	pos := make([]int, n)
	runs := make([][]rune, n)
	for ai, anchor := range anchors {
		for s, seq := range seqs {
			off := slices.Index(seq[pos[s]:], anchor)
			if off < 0 {
				return nil, &InvariantError{Engine: "lcs expand", Cell: []int{s, ai}, Value: int32(anchor)}
			}
			runs[s] = seq[pos[s] : pos[s]+off]
			pos[s] += off + 1
		}
		rows = interleave(rows, runs, anchor, true)
		for s := range rows {
			rows[s] = append(rows[s], anchor)
		}
	}
	for s, seq := range seqs {
		runs[s] = seq[pos[s]:]
	}
	return interleave(rows, runs, 0, false), nil
}

// interleave appends one set of unaligned runs to rows.
//
// While some pair of run heads carries the same residue (other than the
// current anchor), that pair shares a column with gaps everywhere else and
// both cursors advance. Pairs are tried in fixed priority order: (0,1),
// (0,2), ..., (0,n-1), (1,2), ... and the first coincident pair wins. When
// no pair coincides, the remaining runs are right-padded with gaps to the
// longest and emitted column by column.
func interleave(rows, runs [][]rune, anchor rune, anchored bool) [][]rune {
	n := len(runs)
	cur := make([]int, n)
	for {
		a, b, ok := coincidentHeads(runs, cur, anchor, anchored)
		if !ok {
			break
		}
		for s := range rows {
			switch s {
			case a, b:
				rows[s] = append(rows[s], runs[s][cur[s]])
			default:
				rows[s] = append(rows[s], gap)
			}
		}
		cur[a]++
		cur[b]++
	}
	width := 0
	for s := range runs {
		width = max(width, len(runs[s])-cur[s])
	}
	for c := 0; c < width; c++ {
		for s := range rows {
			if i := cur[s] + c; i < len(runs[s]) {
				rows[s] = append(rows[s], runs[s][i])
			} else {
				rows[s] = append(rows[s], gap)
			}
		}
	}
	return rows
}

func coincidentHeads(runs [][]rune, cur []int, anchor rune, anchored bool) (int, int, bool) {
	for a := 0; a < len(runs); a++ {
		if cur[a] >= len(runs[a]) {
			continue
		}
		ra := runs[a][cur[a]]
		if anchored && ra == anchor {
			continue
		}
		for b := a + 1; b < len(runs); b++ {
			if cur[b] < len(runs[b]) && runs[b][cur[b]] == ra {
				return a, b, true
			}
		}
	}
	return 0, 0, false
}
