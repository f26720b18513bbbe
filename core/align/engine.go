package align

import (
	"fmt"

	"lcsalign-core/sequence"
)

// Aligner is the capability shared by every engine variant.
type Aligner interface {
	// Length is the terminal DP value: the optimal score for the scored
	// engine, the LCS length for the LCS engine.
	Length() int
	Align() (*Result, error)
}

// Mode selects an engine.
type Mode string

const (
	ModeAuto   Mode = "auto"   // scored for 2-3 sequences, LCS beyond
	ModeScored Mode = "scored" // 2 or 3 sequences only
	ModeLCS    Mode = "lcs"    // any count >= 2
)

// ParseMode validates a mode name; "" means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeScored, ModeLCS:
		return m, nil
	}
	return "", fmt.Errorf("align: unknown mode %q (want auto | scored | lcs)", s)
}

// Resolve returns the concrete engine mode for n sequences.
func (m Mode) Resolve(n int) Mode {
	if m == ModeAuto || m == "" {
		if n <= 3 {
			return ModeScored
		}
		return ModeLCS
	}
	return m
}

// New builds the engine selected by mode for seqs.
func New(mode Mode, cfg Config, seqs ...sequence.Sequence) (Aligner, error) {
	switch mode.Resolve(len(seqs)) {
	case ModeScored:
		return NewScored(cfg, seqs...)
	case ModeLCS:
		return NewLCS(cfg, seqs...)
	}
	return nil, fmt.Errorf("align: unknown mode %q", mode)
}
