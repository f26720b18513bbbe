package align

import (
	"errors"
	"slices"
	"testing"

	"lcsalign-core/sequence"
)

func TestReport(t *testing.T) {
	_, res := mustScored(t, Config{}, mkSeqs("ATCG", "ATCG"))
	want := "> Sequence 1 (s1): A T C G\n" +
		"> Sequence 2 (s2): A T C G\n" +
		"\n" +
		"> Alignment length = 4\n" +
		"> Identical positions (✓): 1, 2, 3, 4 → total = 4\n" +
		"> Identity = (4 ÷ 4) × 100 ≈ 100.00%\n"
	if got := res.Report(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestReportPartialIdentity(t *testing.T) {
	_, res := mustLCS(t, "ATCG", "ATCG", "ATGG")
	if got, want := res.IdenticalColumns(), []int{1, 2, 4}; !slices.Equal(got, want) {
		t.Fatalf("identical columns %v, want %v", got, want)
	}
	if res.Len() != 5 || res.Identity() != 60 {
		t.Fatalf("len %d identity %v", res.Len(), res.Identity())
	}
	want := "> Sequence 1 (s1): A T C G -\n" +
		"> Sequence 2 (s2): A T C G -\n" +
		"> Sequence 3 (s3): A T - G G\n" +
		"\n" +
		"> Alignment length = 5\n" +
		"> Identical positions (✓): 1, 2, 4 → total = 3\n" +
		"> Identity = (3 ÷ 5) × 100 ≈ 60.00%\n"
	if got := res.Report(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmptyResult(t *testing.T) {
	var r Result
	if r.Len() != 0 || r.Identity() != 0 || len(r.IdenticalColumns()) != 0 {
		t.Fatalf("zero Result: len %d identity %v", r.Len(), r.Identity())
	}
}

func TestVerify(t *testing.T) {
	in := mkSeqs("ACGT", "AGT")
	ok := &Result{Aligned: []string{"ACGT", "A-GT"}, Score: 3}
	if err := ok.Verify(in...); err != nil {
		t.Fatalf("valid alignment: %v", err)
	}
	bad := []*Result{
		{Aligned: []string{"ACGT"}, Score: 3},
		{Aligned: []string{"ACGT", "AGT"}, Score: 3},
		{Aligned: []string{"ACGT", "A-GA"}, Score: 2},
		// all-gap column
		{Aligned: []string{"AC-GT", "A--GT"}, Score: 3},
		// score does not match the identical columns
		{Aligned: []string{"ACGT", "A-GT"}, Score: 4},
		{Aligned: []string{"ACGT", "A-GT"}},
	}
	for i, r := range bad {
		if err := r.Verify(in...); !errors.Is(err, ErrInvariant) {
			t.Errorf("case %d: err=%v, want ErrInvariant", i, err)
		}
	}
	if err := (&Result{Aligned: []string{"ACGT", "-AGT"}, Score: 2}).Verify(in[0], sequence.MustNew("x", "", "AGT")); err != nil {
		t.Errorf("leading gap: %v", err)
	}
}
