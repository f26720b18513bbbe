package fasta

import (
	"context"
	"fmt"

	cerrors "cloudeng.io/errors"

	"lcsalign-core/sequence"
)

// Sequences converts records to validated sequences. Every invalid record is
// reported, not just the first.
func Sequences(recs []Record) ([]sequence.Sequence, error) {
	var errs cerrors.M
	out := make([]sequence.Sequence, 0, len(recs))
	for i, r := range recs {
		s, err := sequence.New(r.ID, r.Description, string(r.Seq))
		if err != nil {
			errs.Append(fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		out = append(out, s)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadStore reads every path in order into a new store. Ids must be unique
// across all files.
func LoadStore(ctx context.Context, paths ...string) (*sequence.Store, error) {
	st := sequence.NewStore()
	for _, p := range paths {
		recs, err := ReadFile(ctx, p)
		if err != nil {
			return nil, err
		}
		seqs, err := Sequences(recs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if err := st.AddAll(seqs...); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return st, nil
}
