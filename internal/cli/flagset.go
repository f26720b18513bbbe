package cli

import "flag"

// NewFlagSet returns a clean FlagSet with ContinueOnError and the lcsalign
// usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	Usage(fs, name)
	return fs
}
