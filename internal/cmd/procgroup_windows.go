//go:build windows

package cmd

import "os/exec"

// setProcessGroup is a no-op on Windows; context cancellation falls back
// to killing the direct child only.
func setProcessGroup(c *exec.Cmd) {}
