// Package version reports build metadata stamped by the Go toolchain.
package version

import "runtime/debug"

type buildInfo struct {
	Version string
	Commit  string
	Time    string
	Dirty   bool
}

var info = read()

func read() buildInfo {
	out := buildInfo{Version: "(devel)", Commit: "unknown", Time: "unknown"}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}
	if bi.Main.Version != "" {
		out.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.Time = s.Value
		case "vcs.modified":
			out.Dirty = s.Value == "true"
		}
	}
	return out
}

// GetBuildInfo returns a copy of the build metadata.
func GetBuildInfo() buildInfo {
	return info
}
