// core/align/lcs.go
package align

import (
	"fmt"

	"lcsalign-core/sequence"
)

// LCS is the unscored longest-common-subsequence engine for any number
// (>= 2) of sequences.
//
// The DP map is keyed by the mixed-radix packing of an index tuple
// (sum of idx[s]*stride[s]). Only non-zero lengths are stored: every tuple
// with a zero coordinate, and every tuple without a common residue in its
// prefixes, reads as 0.
type LCS struct {
	seqs    []sequence.Sequence
	runes   [][]rune
	lens    []int
	stride  []uint64
	diag    uint64 // sum of strides: the all-axes-decremented neighbor
	dp      map[uint64]int32
	anchors []rune
}

// NewLCS fills the DP map for seqs and reconstructs the LCS.
func NewLCS(cfg Config, seqs ...sequence.Sequence) (*LCS, error) {
	if len(seqs) < 2 {
		return nil, fmt.Errorf("%w: LCS engine takes at least 2 sequences, got %d", ErrSequenceCount, len(seqs))
	}
	if err := checkSequences(seqs); err != nil {
		return nil, err
	}
	e := &LCS{
		seqs:   append([]sequence.Sequence(nil), seqs...),
		runes:  make([][]rune, len(seqs)),
		lens:   make([]int, len(seqs)),
		stride: make([]uint64, len(seqs)),
		dp:     make(map[uint64]int32),
	}
	for i, s := range seqs {
		e.runes[i] = s.Runes()
		e.lens[i] = s.Len()
	}
	if _, err := cellCount(e.lens, cfg.maxCells()); err != nil {
		return nil, err
	}
	st := uint64(1)
	for s := len(seqs) - 1; s >= 0; s-- {
		e.stride[s] = st
		e.diag += st
		st *= uint64(e.lens[s] + 1)
	}
	e.fill()
	e.anchors = e.reconstruct()
	return e, nil
}

func (e *LCS) key(idx []int) uint64 {
	var k uint64
	for s, i := range idx {
		k += uint64(i) * e.stride[s]
	}
	return k
}

func (e *LCS) allEqual(idx []int) (rune, bool) {
	r := e.runes[0][idx[0]-1]
	for s := 1; s < len(idx); s++ {
		if e.runes[s][idx[s]-1] != r {
			return r, false
		}
	}
	return r, true
}

// fill visits every tuple with all coordinates >= 1 in lexicographic order
// (last axis fastest), so each one-axis-decremented neighbor is final when
// it is read.
func (e *LCS) fill() {
	n := len(e.lens)
	idx := make([]int, n)
	for s := range idx {
		idx[s] = 1
	}
	k := e.key(idx)
	for {
		var v int32
		if _, ok := e.allEqual(idx); ok {
			v = e.dp[k-e.diag] + 1
		} else {
			for s := 0; s < n; s++ {
				v = max(v, e.dp[k-e.stride[s]])
			}
		}
		if v > 0 {
			e.dp[k] = v
		}

		s := n - 1
		for ; s >= 0; s-- {
			if idx[s] < e.lens[s] {
				idx[s]++
				k += e.stride[s]
				break
			}
			k -= uint64(idx[s]-1) * e.stride[s]
			idx[s] = 1
		}
		if s < 0 {
			return
		}
	}
}

// reconstruct walks back from the full-length tuple. It stops as soon as
// any index reaches zero, mirroring the fill's all-positive condition.
func (e *LCS) reconstruct() []rune {
	idx := append([]int(nil), e.lens...)
	k := e.key(idx)
	var out []rune
	for allPositive(idx) {
		if r, ok := e.allEqual(idx); ok {
			out = append(out, r)
			for s := range idx {
				idx[s]--
			}
			k -= e.diag
			continue
		}
		best, axis := int32(-1), 0
		for s := range idx {
			if v := e.dp[k-e.stride[s]]; v > best {
				best, axis = v, s
			}
		}
		idx[axis]--
		k -= e.stride[axis]
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func allPositive(idx []int) bool {
	for _, i := range idx {
		if i <= 0 {
			return false
		}
	}
	return true
}

// Length returns the LCS length.
func (e *LCS) Length() int { return int(e.dp[e.key(e.lens)]) }

// LCS returns the reconstructed longest common subsequence.
func (e *LCS) LCS() string { return string(e.anchors) }

// Align expands the LCS into a gapped alignment of every sequence; see
// expand.go.
func (e *LCS) Align() (*Result, error) {
	rows, err := expand(e.runes, e.anchors)
	if err != nil {
		return nil, err
	}
	return newResult(e.seqs, rows), nil
}
