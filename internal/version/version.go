// Package version holds the build-time application version.
//
// The values are injected by the build:
//
//	wails build -ldflags "-X sageflow/internal/version.Version=1.2.3 -X sageflow/internal/version.Commit=$(git rev-parse --short HEAD)"
//
// Version must track info.productVersion in wails.json.
package version

// Version is the semantic version of the application.
var Version = "0.1.0"

var (
	// Commit is the git commit the binary was built from
	Commit = "dev"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
}

// Get returns the application version
func Get() string {
	return Version
}

// Info returns the full build information
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
	}
}
