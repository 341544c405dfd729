// Package version reports the build version of mindful.
package version

import (
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags "-X github.com/rshade/mindful/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

const devVersion = "dev"

// GetVersion returns the linker-set version, the module version from build
// info, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}

// GetFullVersion returns the version followed by the commit and build date
// when the linker set them, e.g. "v1.2.3 (commit abc1234, built 2026-01-02)".
func GetFullVersion() string {
	var details []string
	if c := GetGitCommit(); c != "" {
		details = append(details, "commit "+c)
	}
	if d := GetBuildDate(); d != "" {
		details = append(details, "built "+d)
	}
	if len(details) == 0 {
		return GetVersion()
	}
	return GetVersion() + " (" + strings.Join(details, ", ") + ")"
}
