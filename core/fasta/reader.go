// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNoHeader is returned for residue lines that precede the first '>' header.
var ErrNoHeader = errors.New("fasta: sequence data before the first header")

// Record is one parsed FASTA entry. Seq is upper-cased with all whitespace
// removed.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// Parse scans FASTA from r and calls emit once per record, in input order.
// Blank lines and ';' comment lines are skipped. A record may have no
// residues; rejecting it is left to the caller. Parse returns ctx.Err() as
// soon as ctx is done, and stops at the first error returned by emit.
func Parse(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur    *Record
		lineNo int
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		rec := *cur
		cur = nil
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, desc := parseHeader(line[1:])
			cur = &Record{ID: id, Description: desc}
			continue
		}
		if cur == nil {
			return fmt.Errorf("line %d: %w", lineNo, ErrNoHeader)
		}
		cur.Seq = appendResidues(cur.Seq, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadFile parses every record of path (see Open for "-" and gzip).
func ReadFile(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var out []Record
	err = Parse(ctx, rc, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// parseHeader splits a header line (without '>') into the id, which is the
// first whitespace-delimited token, and the free-text description.
func parseHeader(hdr []byte) (string, string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}

func appendResidues(dst, line []byte) []byte {
	for _, f := range bytes.Fields(line) {
		dst = append(dst, bytes.ToUpper(f)...)
	}
	return dst
}
