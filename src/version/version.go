package version

import (
	"runtime"
	"strconv"
	"time"
)

// Build information, set via ldflags during the release build.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
	Platform  = runtime.GOOS + "/" + runtime.GOARCH
)

// GrammarVersion is the DSL grammar revision this build's parser accepts
// (spec §4.1 EBNF). Bumped whenever the grammar changes in a
// backward-incompatible way.
const GrammarVersion = 1

// GetBuildInfo returns build information as a flat map, suitable for the
// CLI's version command.
func GetBuildInfo() map[string]string {
	return map[string]string{
		"version":         Version,
		"git_commit":      GitCommit,
		"build_time":      BuildTime,
		"go_version":      GoVersion,
		"platform":        Platform,
		"grammar_version": strconv.Itoa(GrammarVersion),
	}
}

// GetBuildTime returns the build time, falling back to now if unset or unparseable.
func GetBuildTime() time.Time {
	if BuildTime == "unknown" {
		return time.Now()
	}
	if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
		return t
	}
	return time.Now()
}
