package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lcsalign-core/sequence"
)

const plain = `>seq1 first sequence
ACGT
acgt
>seq2
NNnn

; comment
>seq3	tab separated
AT CG
`

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func parseAll(t *testing.T, in string) []Record {
	t.Helper()
	var out []Record
	if err := Parse(context.Background(), strings.NewReader(in), func(r Record) error {
		out = append(out, r)
		return nil
	}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return out
}

func TestParse(t *testing.T) {
	recs := parseAll(t, plain)
	want := []Record{
		{ID: "seq1", Description: "first sequence", Seq: []byte("ACGTACGT")},
		{ID: "seq2", Seq: []byte("NNNN")},
		{ID: "seq3", Description: "tab separated", Seq: []byte("ATCG")},
	}
	if len(recs) != len(want) {
		t.Fatalf("got %d records, want %d", len(recs), len(want))
	}
	for i := range want {
		if recs[i].ID != want[i].ID || recs[i].Description != want[i].Description || string(recs[i].Seq) != string(want[i].Seq) {
			t.Errorf("record %d: got %+v want %+v", i, recs[i], want[i])
		}
	}
}

func TestParseEmptyRecord(t *testing.T) {
	recs := parseAll(t, ">a\n>b\nAC\n")
	if len(recs) != 2 || len(recs[0].Seq) != 0 || string(recs[1].Seq) != "AC" {
		t.Fatalf("unexpected records %+v", recs)
	}
}

func TestParseNoHeader(t *testing.T) {
	err := Parse(context.Background(), strings.NewReader("ACGT\n>a\nAC\n"), func(Record) error { return nil })
	if !errors.Is(err, ErrNoHeader) {
		t.Fatalf("err=%v, want ErrNoHeader", err)
	}
}

func TestParseStopsOnEmitError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Parse(context.Background(), strings.NewReader(plain), func(Record) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("err=%v after %d records", err, n)
	}
}

func TestParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := Parse(ctx, strings.NewReader(plain), func(Record) error {
		n++
		return nil
	})
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Fatalf("err=%v, %d records", err, n)
	}
}

func TestReadFileGzip(t *testing.T) {
	for _, name := range []string{"x.fa.gz", "x.fa"} { // magic number alone is enough
		path := writeGz(t, name, plain)
		recs, err := ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(recs) != 3 || recs[0].ID != "seq1" || recs[2].ID != "seq3" {
			t.Fatalf("%s: gzip parse failed: %+v", name, recs)
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.fa")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v", err)
	}
}

func TestReadFileStdin(t *testing.T) {
	// Fake stdin by swapping os.Stdin
	orig := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	recs, err := ReadFile(context.Background(), "-")
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records from stdin, got %d", len(recs))
	}
}

func TestSequencesReportsEveryBadRecord(t *testing.T) {
	recs := []Record{
		{ID: "ok", Seq: []byte("AC")},
		{ID: "empty"},
		{ID: "gapped", Seq: []byte("A-C")},
	}
	_, err := Sequences(recs)
	if !errors.Is(err, sequence.ErrEmptyResidues) || !errors.Is(err, sequence.ErrGapResidue) {
		t.Fatalf("err=%v", err)
	}
}

func TestLoadStore(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	if err := os.WriteFile(a, []byte(">s1 one\nACGT\n>s2\nAGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte(">s3\nCGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := LoadStore(context.Background(), a, b)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if got := strings.Join(st.IDs(), ","); got != "s1,s2,s3" {
		t.Fatalf("ids %s", got)
	}
	s1, _ := st.Get("s1")
	if s1.Label() != "one" {
		t.Fatalf("label %q", s1.Label())
	}
	if _, err := LoadStore(context.Background(), a, a); !errors.Is(err, sequence.ErrDuplicateID) {
		t.Fatalf("duplicate ids across files: err=%v", err)
	}
}
