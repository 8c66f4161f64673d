// Package version reports the build version of orbytrixx.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Version and Commit are normally set by the release build:
//
//	go build -ldflags="-X github.com/orbytrixx/orbytrixx/internal/version.Version=v1.2.3 \
//	                   -X github.com/orbytrixx/orbytrixx/internal/version.Commit=abc123"
//
// A `go install github.com/orbytrixx/orbytrixx/cmd/orbytrixx@v1.2.3` build
// has neither and reports the module tag instead.
var (
	Version = ""
	Commit  = ""
)

// develVersion is what the toolchain records for the main module when it is
// built from a working tree rather than a tagged module download.
const develVersion = "(devel)"

func init() {
	info, _ := debug.ReadBuildInfo()
	Version, Commit = resolve(Version, Commit, info, time.Now())
}

// resolve fills the gaps left by ldflags. Order of preference for the
// version: ldflags, the main module version, "dev-" plus the VCS commit date,
// "dev-" plus now. The commit comes from ldflags or the VCS revision.
func resolve(version, commit string, info *debug.BuildInfo, now time.Time) (string, string) {
	var revision, modified, vcsTime string
	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value
			case "vcs.time":
				vcsTime = s.Value
			}
		}
		if version == "" && info.Main.Version != "" && info.Main.Version != develVersion {
			version = info.Main.Version
		}
	}

	if commit == "" && revision != "" {
		commit = shortRevision(revision)
		if modified == "true" {
			commit += "-dirty"
		}
	}
	if commit == "" {
		commit = pseudoRevision(version)
	}

	if version == "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			version = "dev-" + t.Format("20060102")
		} else {
			version = "dev-" + now.Format("20060102-150405")
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	return version, commit
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// pseudoRevision extracts the commit from a module pseudo-version such as
// v0.0.0-20250101120000-abcdef123456.
func pseudoRevision(version string) string {
	parts := strings.Split(version, "-")
	if len(parts) < 3 {
		return ""
	}
	rev := parts[len(parts)-1]
	if len(rev) != 12 {
		return ""
	}
	return shortRevision(rev)
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// UserAgent returns the User-Agent sent with submission requests.
func UserAgent() string {
	return "orbytrixx/" + Version
}
