package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes the same v1 document as WriteJSON, in YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToAPI(r)); err != nil {
		return err
	}
	return enc.Close()
}
