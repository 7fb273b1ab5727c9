// Package version derives the running binary's version string. An -ldflags
// override wins, then the VCS revision from debug.BuildInfo, then "dev" for
// builds without either (go test, non-git checkouts).
package version

import "runtime/debug"

// AppName is the application name used in version strings and user agents.
const AppName = "postwatch"

// gitCommitOverride comes from -ldflags; container builds have no .git to
// read the revision from.
var gitCommitOverride string

// GitCommit is the short (8 char) commit hash, or "dev".
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		if len(gitCommitOverride) > 8 {
			return gitCommitOverride[:8]
		}
		return gitCommitOverride
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 8 {
				return s.Value[:8]
			}
			return s.Value
		}
	}
	return "dev"
}

// Full returns "postwatch/<commit>" for use in user-agent strings, logging, etc.
func Full() string {
	return AppName + "/" + GitCommit
}
