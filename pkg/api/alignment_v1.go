// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON/YAML schema for one alignment run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AlignmentV1 struct {
	Engine   string     `json:"engine" yaml:"engine"` // "scored" | "lcs"
	Length   int        `json:"length" yaml:"length"` // terminal DP value
	Scoring  *ScoringV1 `json:"scoring,omitempty" yaml:"scoring,omitempty"`
	LCS      string     `json:"lcs,omitempty" yaml:"lcs,omitempty"`
	Columns  int        `json:"columns" yaml:"columns"`
	Score    int        `json:"score" yaml:"score"` // all-identical non-gap columns
	Identity float64    `json:"identity" yaml:"identity"`
	// Identical holds the 1-based column numbers counted by Score.
	Identical []int   `json:"identical,omitempty" yaml:"identical,omitempty"`
	Rows      []RowV1 `json:"rows" yaml:"rows"`
	Pairwise  [][]int `json:"pairwise_lcs,omitempty" yaml:"pairwise_lcs,omitempty"`
}

// ScoringV1 is only present for the scored engine.
type ScoringV1 struct {
	Match    int `json:"match" yaml:"match"`
	Mismatch int `json:"mismatch" yaml:"mismatch"`
	Gap      int `json:"gap" yaml:"gap"`
}

// RowV1 is one gapped sequence. It is also the JSONL line type.
type RowV1 struct {
	ID      string `json:"id" yaml:"id"`
	Label   string `json:"label,omitempty" yaml:"label,omitempty"`
	Aligned string `json:"aligned" yaml:"aligned"`
}
