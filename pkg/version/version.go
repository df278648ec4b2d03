// Package version exposes build metadata for the carbonwise binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const devVersion = "0.0.0-dev"

// Set via -ldflags "-X github.com/rshade/carbonwise/pkg/version.Version=...".
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

//nolint:gochecknoinits // Build info must be read before any command runs.
func init() {
	populateFromBuildInfo(debug.ReadBuildInfo)
}

// populateFromBuildInfo fills empty fields from the embedded VCS settings.
// Values supplied by ldflags are left alone.
func populateFromBuildInfo(read func() (*debug.BuildInfo, bool)) {
	bi, ok := read()
	if !ok || bi == nil {
		return
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	const shortSHA = 7
	if rev := settings["vcs.revision"]; Commit == "" && len(rev) >= shortSHA {
		Commit = rev[:shortSHA]
	}
	if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); BuildTime == "" && err == nil {
		BuildTime = ts.UTC().Format(time.RFC3339)
	}
	if Version == devVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}
}

// GetVersion returns the normalized semantic version, or the raw value when
// it does not parse.
func GetVersion() string {
	v, err := semver.NewVersion(strings.TrimSpace(Version))
	if err != nil {
		return Version
	}
	return v.String()
}

// FormatVersion renders the version with commit and build time when known.
// Example: "1.2.0 (commit: abc1234, built at: 2026-03-01T10:20:30Z)".
func FormatVersion() string {
	ver := GetVersion()
	switch {
	case Commit == "" && BuildTime == "":
		return ver + " (development)"
	case BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", ver, Commit)
	default:
		commit := Commit
		if commit == "" {
			commit = "unknown"
		}
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}
}
