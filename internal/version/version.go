package version

import "fmt"

// These are set at build time via ldflags
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("beontrack %s (%s) built %s", Version, GitCommit[:min(7, len(GitCommit))], BuildTime)
}

// Short returns just the version string
func Short() string {
	return Version
}
