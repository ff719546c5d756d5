package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set with -ldflags "-X github.com/MrSnakeDoc/newtab/internal/version.Version=v0.1.0".
var (
	Version   = "dev"                           // ex: v0.1.0
	Commit    = "none"                          // ex: abcd123
	BuildDate = time.Now().Format(time.RFC3339) // ex: 2026-10-18T18:42:00Z
	GoVersion = runtime.Version()               // go version
)

func init() {
	if Commit != "none" {
		return
	}
	// go install / go build from a checkout still records the revision
	if info, ok := debug.ReadBuildInfo(); ok {
		Commit = revision(info.Settings, Commit)
	}
}

func revision(settings []debug.BuildSetting, fallback string) string {
	rev, dirty := "", false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return fallback
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}

// String is the one-line build description logged at startup.
func String() string {
	return fmt.Sprintf("newtab %s (commit=%s, built=%s, go=%s)", Version, Commit, BuildDate, GoVersion)
}
