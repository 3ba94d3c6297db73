// Package version holds build metadata injected via ldflags.
package version

import "fmt"

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Commit is the short git commit hash the binary was built from.
	Commit = "none"
	// BuildDate is the build timestamp in RFC 3339.
	BuildDate = "unknown"
)

// String renders the metadata in one line, e.g. "0.3.1 (4f2a9c1, 2026-08-29T10:00:00Z)".
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, BuildDate)
}
