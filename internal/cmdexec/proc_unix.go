//go:build !windows

package cmdexec

import (
	"os/exec"
	"syscall"
)

// setProcessGroup은 셸이 띄운 자식 프로세스까지 함께 종료할 수 있도록 새 프로세스 그룹을 만든다.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
