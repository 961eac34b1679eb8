// Package misc keeps program identity set at build time.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X cascade/misc.version=... -X cascade/misc.hash=...".
var (
	version = ""
	hash    = ""
)

func GetAppName() string {
	return "cascade"
}

func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

func GetGitHash() string {
	if len(hash) > 0 {
		return hash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
