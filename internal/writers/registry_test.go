package writers

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"

	"lcsalign-core/align"
	"lcsalign-core/sequence"
	"lcsalign/internal/output"
)

func payload(t *testing.T) Payload {
	t.Helper()
	e, err := align.NewLCS(align.Config{}, sequence.MustNew("a", "", "ACGT"), sequence.MustNew("b", "", "AGT"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := e.Align()
	if err != nil {
		t.Fatal(err)
	}
	return Payload{Report: output.Report{Engine: align.ModeLCS, Length: e.Length(), LCS: e.LCS(), Result: res}}
}

func TestRegisteredFormats(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "fasta,json,jsonl,text,yaml" {
		t.Fatalf("formats %s", got)
	}
	for _, f := range Formats() {
		var b bytes.Buffer
		if err := Write(f, &b, payload(t)); err != nil {
			t.Errorf("%s: %v", f, err)
		}
		if b.Len() == 0 {
			t.Errorf("%s: empty output", f)
		}
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	err := Write("nope-format", &b, payload(t))
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
	if Has("nope-format") {
		t.Fatal("Has reports an unregistered format")
	}
}

func TestIsBrokenPipe(t *testing.T) {
	for _, err := range []error{syscall.EPIPE, io.ErrClosedPipe, fmt.Errorf("write: %w", syscall.EPIPE), os.ErrClosed} {
		if !IsBrokenPipe(err) {
			t.Errorf("%v not recognised", err)
		}
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Error("false positive")
	}
}
