package version

import "fmt"

// Tagline is the application's tagline used in help text
const Tagline = "Clock in, clock out, from your terminal"

// Build information injected at build time via ldflags
var (
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
	Version   = "dev"     // Semantic version or "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("punch %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
