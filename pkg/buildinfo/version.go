// Package buildinfo carries version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/axis2d/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/axis2d/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/axis2d/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// ServerHeader is the value of the Server response header.
func ServerHeader() string {
	return "axis2d/" + Version
}

// CacheScope prefixes cache keys so that artifacts rendered by one build
// are never served by another.
func CacheScope() string {
	return fmt.Sprintf("axis2d:%s:%s:", Version, Commit)
}
