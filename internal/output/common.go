package output

import "lcsalign-core/align"

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
	FormatFASTA = "fasta"
)

// Report is everything a writer may print about one alignment run.
type Report struct {
	Engine align.Mode // resolved: scored or lcs
	Length int        // terminal DP value
	// Scoring is set for the scored engine only.
	Scoring *align.Scoring
	// LCS is set for the LCS engine only.
	LCS      string
	Result   *align.Result
	Pairwise [][]int // optional pairwise LCS matrix
}
