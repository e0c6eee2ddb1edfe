package util

import (
	"runtime/debug"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	GoVersion string `json:"goVersion"`
}

// GetBuildInfo reads version, vcs revision and go version from the embedded build info.
func GetBuildInfo() BuildInfo {
	build := BuildInfo{Version: "unknown", Revision: "unknown", GoVersion: "unknown"}
	info, available := debug.ReadBuildInfo()
	if !available {
		return build
	}
	build.Version = info.Main.Version
	build.GoVersion = info.GoVersion
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			build.Revision = setting.Value
			break
		}
	}
	return build
}

// GetFullVersion returns version-shortrevision of the current build.
func GetFullVersion() string {
	build := GetBuildInfo()
	revision := build.Revision
	if len(revision) > 7 {
		revision = revision[:7]
	}
	return build.Version + "-" + revision
}
