package main

import (
	"runtime"

	"github.com/bnema/bezel/internal/cli/cmd"
	"github.com/bnema/bezel/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must be driven from the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
