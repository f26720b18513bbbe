// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lcsalign/internal/app"
	"lcsalign/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	code, out, errS := run(t, args...)
	if code != 0 {
		t.Fatalf("run %v: exit %d, err=%s", args, code, errS)
	}
	return out
}

func TestEndToEndPairwise(t *testing.T) {
	fa := write(t, "pair.fa", ">s1 first\nATCG\n>s2\natcg\n")
	out := mustRun(t, fa)
	for _, want := range []string{
		"> Sequence 1 (s1): A T C G\n",
		"> Identical positions (✓): 1, 2, 3, 4 → total = 4\n",
		"> Identity = (4 ÷ 4) × 100 ≈ 100.00%\n",
		"optimal score = 8\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestAutoSelectsLCSForFour(t *testing.T) {
	fa := write(t, "four.fa", ">a\nATCG\n>b\nATCG\n>c\nATCG\n>d\nATCG\n")
	out := mustRun(t, "-s", fa, "--pairwise")
	if !strings.Contains(out, "> Engine = lcs, LCS = ATCG (length 4)\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "> Pairwise LCS lengths\n") {
		t.Fatalf("pairwise matrix missing:\n%s", out)
	}
}

func TestJSONLCSMode(t *testing.T) {
	fa := write(t, "three.fa", ">a\nATCG\n>b\nATCG\n>c\nATGG\n")
	out := mustRun(t, "-s", fa, "--mode", "lcs", "-o", "json")
	var doc api.AlignmentV1
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if doc.Engine != "lcs" || doc.LCS != "ATG" || doc.Length != 3 || doc.Score != 3 || doc.Columns != 5 {
		t.Fatalf("unexpected doc %+v", doc)
	}
	want := []string{"ATCG-", "ATCG-", "AT-GG"}
	for i, r := range doc.Rows {
		if r.Aligned != want[i] {
			t.Fatalf("row %d = %q want %q", i, r.Aligned, want[i])
		}
	}
}

func TestIDsSelectAndOrder(t *testing.T) {
	fa := write(t, "ids.fa", ">a\nAAAA\n>b\nTTTT\n>c\nAAAT\n")
	out := mustRun(t, fa, "--ids", "c,a", "-o", "fasta")
	if !strings.HasPrefix(out, ">c\n") || strings.Contains(out, ">b") {
		t.Fatalf("unexpected selection:\n%s", out)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	var b strings.Builder
	bases := "ACGT"
	for s := 0; s < 3; s++ {
		fmt.Fprintf(&b, ">s%d\n", s)
		for i := 0; i < 60+s*7; i++ {
			b.WriteByte(bases[(i*i+s*i+s)%4])
		}
		b.WriteByte('\n')
	}
	fa := write(t, "par.fa", b.String())

	serial := mustRun(t, "-s", fa, "--workers", "1", "-o", "json")
	parallel := mustRun(t, "-s", fa, "--workers", "4", "-o", "json")
	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}

func TestConfigPrecedence(t *testing.T) {
	fa := write(t, "p.fa", ">a\nACGT\n>b\nAGT\n")
	cfg := write(t, "lcsalign.yaml", "output: json\nscoring:\n  match: 5\n")

	out := mustRun(t, "--config", cfg, fa)
	var doc api.AlignmentV1
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("config output not honoured: %v\n%s", err, out)
	}
	if doc.Scoring == nil || doc.Scoring.Match != 5 {
		t.Fatalf("scoring %+v", doc.Scoring)
	}

	t.Setenv("LCSALIGN_OUTPUT", "yaml")
	if out := mustRun(t, "--config", cfg, fa); !strings.HasPrefix(out, "engine: scored\n") {
		t.Fatalf("env did not override file:\n%s", out)
	}
	if out := mustRun(t, "--config", cfg, fa, "-o", "fasta"); !strings.HasPrefix(out, ">a\n") {
		t.Fatalf("flag did not override env:\n%s", out)
	}
}

func TestExitCodes(t *testing.T) {
	one := write(t, "one.fa", ">a\nACGT\n")
	two := write(t, "two.fa", ">a\nACGT\n>b\nAGT\n")
	four := write(t, "four.fa", ">a\nA\n>b\nA\n>c\nA\n>d\nA\n")
	bad := write(t, "bad.fa", ">a\nAC-GT\n>b\n")
	badCfg := write(t, "bad.yaml", "colour: blue\n")
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"single sequence", []string{one}, 2},
		{"missing id", []string{two, "--ids", "a,z"}, 2},
		{"scored with four", []string{four, "--mode", "scored"}, 2},
		{"lattice too large", []string{two, "--max-cells", "10"}, 2},
		{"unknown output", []string{two, "-o", "xml"}, 2},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.fa")}, 2},
		{"invalid records", []string{bad}, 2},
		{"unknown config key", []string{two, "--config", badCfg}, 2},
		{"unknown flag", []string{two, "--colour"}, 2},
		{"all-zero scoring", []string{two, "--match", "0", "--mismatch", "0", "--gap", "0"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errS := run(t, tc.args...)
			if code != tc.code {
				t.Fatalf("exit %d want %d (stderr=%s)", code, tc.code, errS)
			}
			if errS == "" {
				t.Fatal("no diagnostic on stderr")
			}
		})
	}
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := run(t)
	if code != 0 || !strings.Contains(out, "Usage:") {
		t.Fatalf("no-arg help: exit %d\n%s", code, out)
	}
	code, out, _ = run(t, "-h")
	if code != 0 || !strings.Contains(out, "--sequences") {
		t.Fatalf("-h: exit %d\n%s", code, out)
	}
	code, out, _ = run(t, "--version")
	if code != 0 || out != "lcsalign version dev\n" {
		t.Fatalf("--version: exit %d %q", code, out)
	}
}

func TestVerboseLogsJSON(t *testing.T) {
	fa := write(t, "v.fa", ">a\nACGT\n>b\nAGT\n")
	code, _, errS := run(t, fa, "--verbose")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, line := range strings.Split(strings.TrimSpace(errS), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("stderr line is not JSON: %q", line)
		}
	}
	if !strings.Contains(errS, `"msg":"aligned"`) {
		t.Fatalf("missing aligned record:\n%s", errS)
	}
}

func TestLCSWorkersWarning(t *testing.T) {
	fa := write(t, "w.fa", ">a\nA\n>b\nA\n>c\nA\n>d\nA\n")
	code, _, errS := run(t, fa, "--workers", "4")
	if code != 0 || !strings.Contains(errS, "WARN: --workers") {
		t.Fatalf("exit %d stderr %q", code, errS)
	}
	code, _, errS = run(t, fa, "--workers", "4", "-q")
	if code != 0 || errS != "" {
		t.Fatalf("quiet: exit %d stderr %q", code, errS)
	}
}
