package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ProgramName is stamped into the banner of every generated file.
const ProgramName = "PythonQtWrapper"

// These variables are set at build time via ldflags
var (
	Version   = "0.0.0"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Semver parses Version.
func Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", Version, err)
	}
	return v, nil
}

// Short returns the normalized semantic version, or Version verbatim when it
// is not a valid semantic version.
func Short() string {
	v, err := Semver()
	if err != nil {
		return Version
	}
	return v.String()
}

// String returns the full version string shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Short(), shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
