package models

// VersionResponse is the body of GET /api/version. It reports which build
// of the server is answering, so deploy scripts and test harnesses can tell
// instances apart.
type VersionResponse struct {
	// Version is the configured application version, falling back to the
	// version injected at build time.
	Version string `json:"version"`

	// BuildDate is the build timestamp injected with -ldflags.
	BuildDate string `json:"build_date"`

	// BuildCommit is the source-control commit the binary was built from.
	BuildCommit string `json:"build_commit"`
}
