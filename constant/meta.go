// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Swatch is the canonical application identifier used for filesystem paths and CLI branding.
	Swatch = "swatch"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
