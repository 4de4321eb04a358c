//go:build unix

package cmd

import (
	"os/exec"
	"syscall"
	"time"
)

// setProcessGroup places the child in its own process group and replaces
// the default context cancel behavior with a kill of the whole group, so
// that tools which fork (test runners, build systems) leave no orphans
// behind when the user interrupts a run.
func setProcessGroup(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	c.Cancel = func() error {
		if c.Process == nil {
			return nil
		}
		return syscall.Kill(-c.Process.Pid, syscall.SIGKILL)
	}
	c.WaitDelay = 5 * time.Second
}
