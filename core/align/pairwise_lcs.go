package align

import (
	"cloudeng.io/algo/lcs"

	"lcsalign-core/sequence"
)

// PairwiseLCS returns the symmetric matrix of pairwise LCS lengths; the
// diagonal holds each sequence's length. It is computed independently of
// the N-ary engine with Myers' O(ND) algorithm.
func PairwiseLCS(seqs ...sequence.Sequence) [][]int {
	runes := make([][]rune, len(seqs))
	for i, s := range seqs {
		runes[i] = s.Runes()
	}
	m := make([][]int, len(seqs))
	for i := range m {
		m[i] = make([]int, len(seqs))
		m[i][i] = len(runes[i])
	}
	for i := range runes {
		for j := i + 1; j < len(runes); j++ {
			n := len(lcs.NewMyers(runes[i], runes[j]).LCS())
			m[i][j], m[j][i] = n, n
		}
	}
	return m
}
