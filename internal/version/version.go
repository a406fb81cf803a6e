package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/pokedex/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/pokedex/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/pokedex/internal/version.Date={{.Date}}
)

// UserAgent is the User-Agent sent with every outgoing request.
func UserAgent() string {
	return "pokedex/" + Version
}
