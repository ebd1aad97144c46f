package cmd

import (
	"fmt"
	"io"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func versionText() string {
	return fmt.Sprintf("flac-directory version %s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

func printVersion(w io.Writer) {
	emitNDJSON(w, "info", "version_info", "version information", map[string]any{
		"tool":       "flac-directory",
		"version":    Version,
		"commit":     Commit,
		"build_time": BuildTime,
		"text":       versionText(),
	}, "")
}
