// Package align contains the exact alignment engines. It never imports the
// CLI, writers or app packages; keep it domain-only.
//
// Two engines are provided:
//
//   - Scored: global alignment of 2 or 3 sequences over a dense lattice with
//     match/mismatch/gap scores (Needleman-Wunsch generalized to a tensor
//     for three sequences).
//   - LCS: unscored longest common subsequence of N >= 2 sequences over a
//     sparse DP map, expanded into a gapped alignment around LCS anchors.
//
// Both fill their DP structure once, at construction, and answer queries
// from it without rebuilding. Traceback tie-breaks follow a fixed priority
// order so that results are reproducible bit-for-bit:
//
//	pairwise: diagonal, gap in b (advance a), gap in a (advance b)
//	triple:   diagonal, single-axis moves 1,2,3, double moves (1,2),(1,3),(2,3)
//	LCS:      all-equal diagonal, else the lowest axis holding the max value
package align
