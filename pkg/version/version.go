// Package version holds build metadata set with -ldflags at build time.
package version

import "runtime"

// Build variables
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
	OS        = runtime.GOOS
	Arch      = runtime.GOARCH
)

// Name is the service name reported by the API and the CLI
const Name = "Video Coding API"
