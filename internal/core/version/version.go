// Package version provides information about the build version of the service.
package version

import "runtime"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'biblia/internal/core/version.version=v0.1.0'
	// -X 'biblia/internal/core/version.commit=abcd' -X 'biblia/internal/core/version.date=2026-10-19'"
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// Service is the name reported by the API and the User-Agent of outbound calls
const Service = "biblia-api"

// String renders a one line banner for CLI --version output
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
