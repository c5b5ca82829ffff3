package platform

import (
	"fmt"
	"runtime"
	"syscall"
)

const (
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
	esContinuous      = 0x80000000
)

// executionStateInhibitor pins a goroutine to one OS thread because
// SetThreadExecutionState applies to the calling thread.
type executionStateInhibitor struct {
	release chan struct{}
	done    chan error
}

func newInhibitor(string) Inhibitor {
	return &executionStateInhibitor{}
}

func (inhibitor *executionStateInhibitor) Inhibit(string) error {
	if inhibitor.release != nil {
		return nil
	}

	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	setState := kernel32.NewProc("SetThreadExecutionState")
	if err := setState.Find(); err != nil {
		return fmt.Errorf("%w: %v", ErrKeepAwakeUnsupported, err)
	}

	started := make(chan error, 1)
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		result, _, err := setState.Call(uintptr(esContinuous | esDisplayRequired | esSystemRequired))
		if result == 0 {
			started <- fmt.Errorf("set thread execution state: %w", err)
			return
		}
		started <- nil

		<-release
		result, _, err = setState.Call(uintptr(esContinuous))
		if result == 0 {
			done <- fmt.Errorf("reset thread execution state: %w", err)
			return
		}
		done <- nil
	}()

	if err := <-started; err != nil {
		return err
	}
	inhibitor.release = release
	inhibitor.done = done
	return nil
}

func (inhibitor *executionStateInhibitor) Release() error {
	if inhibitor.release == nil {
		return nil
	}
	close(inhibitor.release)
	err := <-inhibitor.done
	inhibitor.release = nil
	inhibitor.done = nil
	return err
}
