package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// Version is the semantic version number
	Version = "0.3.0"

	// GitCommit is the git commit hash (injected at build time)
	GitCommit = "unknown"

	// BuildDate is the build date (injected at build time)
	BuildDate = "unknown"
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns comprehensive version information
func GetInfo() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// GetVersionString returns a one line version string
func GetVersionString() string {
	if GitCommit == "unknown" {
		return fmt.Sprintf("HCP Link %s", Version)
	}

	shortCommit := GitCommit
	if len(shortCommit) > 8 {
		shortCommit = shortCommit[:8]
	}

	return fmt.Sprintf("HCP Link %s (%s)", Version, shortCommit)
}

// GetDetailedVersionString returns the --version output
func GetDetailedVersionString() string {
	info := GetInfo()

	build := "development"
	if IsRelease() {
		build = "release"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "HCP Link %s (%s build)\n", info.Version, build)
	fmt.Fprintf(&sb, "Git commit: %s\n", info.GitCommit)
	fmt.Fprintf(&sb, "Build date: %s\n", info.BuildDate)
	fmt.Fprintf(&sb, "Go version: %s\n", info.GoVersion)
	fmt.Fprintf(&sb, "Platform: %s", info.Platform)
	return sb.String()
}

// IsRelease returns true if this is a release version (not a dev build)
func IsRelease() bool {
	return Version != "" && GitCommit != "unknown" && !strings.Contains(Version, "dev")
}
