// Package version provides build-time version information.
package version

import "fmt"

// Set at build time with -ldflags "-X omr-workbench/internal/version.GitCommit=...".
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("omr-workbench %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
