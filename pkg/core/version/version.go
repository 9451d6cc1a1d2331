// ============================================================================
// strkit - String Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information for the strkit library and CLI
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Toolkit is the version of the strkit release
	Toolkit = "0.3.0"

	// Library versions
	Stringx = "0.3.0"
	Config  = "0.2.0"
	Log     = "0.2.0"
	Error   = "0.2.0"
)

// Build metadata, set through -ldflags "-X" at release time.
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Toolkit,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("strkit v%s (%s, %s)", i.Version, i.GitCommit, i.Platform)
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "stringx":
		return Stringx
	case "config":
		return Config
	case "log":
		return Log
	case "error", "errors":
		return Error
	default:
		return Toolkit
	}
}
