// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"lcsalign/internal/output"
	"lcsalign/internal/pretty"
)

// Payload is what every alignment writer receives.
type Payload struct {
	Report output.Report

	// Text-only sections.
	Pretty        bool
	PrettyOptions pretty.Options
	Pairwise      bool

	// FASTA line width (0 = unwrapped).
	Width int
}

// Writer registry (format → handler). Registered in init() from alignment.go.
var AlignmentWriters = map[string]func(w io.Writer, p Payload) error{}

// Register adds or replaces (last wins) the writer for format.
func Register(format string, fn func(io.Writer, Payload) error) { AlignmentWriters[format] = fn }

// Has reports whether a writer is registered for format.
func Has(format string) bool {
	_, ok := AlignmentWriters[format]
	return ok
}

// Formats returns the registered format names, sorted.
func Formats() []string { return slices.Sorted(maps.Keys(AlignmentWriters)) }

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, p Payload) error {
	fn, ok := AlignmentWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, p)
}
