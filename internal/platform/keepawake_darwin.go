package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// caffeinateInhibitor runs caffeinate tied to our pid, so it also exits if
// the app dies without releasing.
type caffeinateInhibitor struct {
	cmd *exec.Cmd
}

func newInhibitor(string) Inhibitor {
	return &caffeinateInhibitor{}
}

func (inhibitor *caffeinateInhibitor) Inhibit(string) error {
	if inhibitor.cmd != nil {
		return nil
	}
	path, err := exec.LookPath("caffeinate")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeepAwakeUnsupported, err)
	}
	cmd := exec.Command(path, "-d", "-w", strconv.Itoa(os.Getpid()))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start caffeinate: %w", err)
	}
	inhibitor.cmd = cmd
	return nil
}

func (inhibitor *caffeinateInhibitor) Release() error {
	if inhibitor.cmd == nil {
		return nil
	}
	cmd := inhibitor.cmd
	inhibitor.cmd = nil
	if err := cmd.Process.Kill(); err != nil {
		return fmt.Errorf("stop caffeinate: %w", err)
	}
	_ = cmd.Wait()
	return nil
}
