// Package buildinfo holds version information set at link time:
//
//	go build -ldflags "-X github.com/vrcsend/vrcsend/internal/buildinfo.Version=1.0.0"
package buildinfo

var (
	Version    = "dev"
	Codename   = "unknown"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
