//go:build unix

package platform

import (
	"os/exec"
	"syscall"
)

// startDetached runs command through /bin/sh in its own session and forgets it
func startDetached(command string) error {
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
