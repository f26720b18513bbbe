package output

import (
	"fmt"
	"io"
)

// WriteFASTA writes each gapped row as a FASTA record (">id label"),
// wrapping residues at width columns (width <= 0: one line per row).
func WriteFASTA(w io.Writer, r Report, width int) error {
	res := r.Result
	for i, a := range res.Aligned {
		hdr := fmt.Sprintf("row%d", i+1)
		if i < len(res.IDs) {
			hdr = res.IDs[i]
		}
		if i < len(res.Labels) && res.Labels[i] != "" {
			hdr += " " + res.Labels[i]
		}
		if _, err := fmt.Fprintf(w, ">%s\n", hdr); err != nil {
			return err
		}
		row := []rune(a)
		step := width
		if step <= 0 {
			step = max(len(row), 1)
		}
		for lo := 0; lo < len(row); lo += step {
			if _, err := fmt.Fprintln(w, string(row[lo:min(lo+step, len(row))])); err != nil {
				return err
			}
		}
	}
	return nil
}
