package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/ferdium/ferdium-themes/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/ferdium/ferdium-themes/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/ferdium/ferdium-themes/internal/version.Date={{.Date}}
)

// String formats the build information for --version
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
