// ============================================================================
// toolbox - String Helper Toolbox
// ============================================================================
//
// Package:     version
// Description: Central version information for the toolbox binary
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the toolbox release version
const Version = "0.1.0"

// Set at build time via -ldflags "-X github.com/msto63/toolbox/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one-line summary, e.g. "toolbox v0.1.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("toolbox v%s (%s)", i.Version, i.GitCommit)
}
