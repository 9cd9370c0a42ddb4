package version

import (
	"fmt"
	"time"

	"github.com/clasdaq/evio/pkg/evio"
)

var (
	// Version is the release version (set via -ldflags).
	Version = ""
	// Commit is the git commit hash (set via -ldflags).
	Commit = ""
	// BuildTime is the build timestamp (set via -ldflags).
	BuildTime = ""
)

type Info struct {
	Version   string
	Commit    string
	BuildTime string
	// FormatVersion is the EVIO/HIPO container format version this
	// build decodes, not this binary's own release version.
	FormatVersion uint8
}

func Resolve() Info {
	resolved := Info{
		Version:       Version,
		Commit:        Commit,
		BuildTime:     BuildTime,
		FormatVersion: evio.SupportedVersion,
	}

	if resolved.Version == "" {
		if resolved.BuildTime != "" {
			resolved.Version = resolved.BuildTime
		} else {
			resolved.Version = time.Now().UTC().Format("20060102T150405Z")
		}
	}

	return resolved
}

func String() string {
	info := Resolve()
	base := info.Version
	if info.Commit != "" {
		base = fmt.Sprintf("%s (%s)", base, shortCommit(info.Commit))
	}
	return fmt.Sprintf("%s [evio format v%d]", base, info.FormatVersion)
}

func shortCommit(commit string) string {
	if len(commit) <= 12 {
		return commit
	}
	return commit[:12]
}
