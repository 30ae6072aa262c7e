package app

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Version, Commit and BuildTime are set with -ldflags "-X ...app.Version=1.2.0".
// When left unset, Commit and BuildTime fall back to the VCS stamp the Go
// toolchain embeds in the binary.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var vcsOnce sync.Once

// BuildVersion returns the version string logged at startup.
func BuildVersion() string {
	vcsOnce.Do(fillFromBuildInfo)
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

func fillFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "unknown" && s.Value != "" {
				Commit = s.Value[:min(len(s.Value), 12)]
			}
		case "vcs.time":
			if BuildTime == "unknown" && s.Value != "" {
				BuildTime = s.Value
			}
		}
	}
}
