// Package version carries the build version, stamped with
// -ldflags "-X lcsalign/internal/version.Version=v1.2.3".
package version

var Version = "dev"
