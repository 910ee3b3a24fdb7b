// Package version exposes build metadata for the company API binary.
// The discovery endpoint and startup log both report Version.
package version

// Overridden at build time, e.g.:
//
//	go build -ldflags "-X github.com/LoaiAlaa24/fetch-companies-data/internal/version.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
