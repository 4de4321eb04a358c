package main

import (
	"fmt"
	"runtime"
)

// Version information - set by goreleaser
var (
	version   = "dev"
	gitCommit = "none"
	date      = "unknown"
)

func main() {
	Execute()
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("breath %s (%s, %s, %s)", version, gitCommit[:min(7, len(gitCommit))], date, runtime.Version())
}
