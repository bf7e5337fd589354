package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/leveldbpatch/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/leveldbpatch/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/leveldbpatch/internal/version.Date={{.Date}}
)

// Summary is the one-line form printed by --version
func Summary() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
