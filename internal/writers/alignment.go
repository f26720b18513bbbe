package writers

import (
	"io"

	"lcsalign/internal/output"
)

func init() {
	Register(output.FormatText, func(w io.Writer, p Payload) error {
		return output.WriteText(w, p.Report, output.TextOptions{
			Pretty:        p.Pretty,
			PrettyOptions: p.PrettyOptions,
			Pairwise:      p.Pairwise,
		})
	})
	Register(output.FormatJSON, func(w io.Writer, p Payload) error { return output.WriteJSON(w, p.Report) })
	Register(output.FormatJSONL, func(w io.Writer, p Payload) error { return output.WriteJSONL(w, p.Report, IsBrokenPipe) })
	Register(output.FormatYAML, func(w io.Writer, p Payload) error { return output.WriteYAML(w, p.Report) })
	Register(output.FormatFASTA, func(w io.Writer, p Payload) error { return output.WriteFASTA(w, p.Report, p.Width) })
}
