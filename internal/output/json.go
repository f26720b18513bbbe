// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"slices"

	"lcsalign/internal/jsonlutil"
	"lcsalign/internal/jsonutil"
	"lcsalign/pkg/api"
)

// ToAPI converts a Report to the stable wire schema (v1).
func ToAPI(r Report) api.AlignmentV1 {
	v := api.AlignmentV1{
		Engine:    string(r.Engine),
		Length:    r.Length,
		LCS:       r.LCS,
		Columns:   r.Result.Len(),
		Score:     r.Result.Score,
		Identity:  r.Result.Identity(),
		Identical: r.Result.IdenticalColumns(),
		Rows:      toAPIRows(r),
	}
	if r.Scoring != nil {
		v.Scoring = &api.ScoringV1{Match: r.Scoring.Match, Mismatch: r.Scoring.Mismatch, Gap: r.Scoring.Gap}
	}
	for _, row := range r.Pairwise {
		v.Pairwise = append(v.Pairwise, slices.Clone(row))
	}
	return v
}

func toAPIRows(r Report) []api.RowV1 {
	res := r.Result
	out := make([]api.RowV1, len(res.Aligned))
	for i, a := range res.Aligned {
		out[i] = api.RowV1{Aligned: a}
		if i < len(res.IDs) {
			out[i].ID = res.IDs[i]
		}
		if i < len(res.Labels) {
			out[i].Label = res.Labels[i]
		}
	}
	return out
}

// WriteJSON writes the report as one pretty-indented JSON object.
func WriteJSON(w io.Writer, r Report) error {
	return jsonutil.EncodePretty(w, ToAPI(r))
}

// WriteJSONL writes one JSON line per aligned row.
func WriteJSONL(w io.Writer, r Report, isBroken func(error) bool) error {
	return jsonlutil.Write(w, slices.Values(toAPIRows(r)), func(enc *json.Encoder, row api.RowV1) error {
		return enc.Encode(row)
	}, isBroken)
}
