//go:build !linux && !windows && !darwin

package platform

type unsupportedInhibitor struct{}

func newInhibitor(string) Inhibitor {
	return unsupportedInhibitor{}
}

func (unsupportedInhibitor) Inhibit(string) error {
	return ErrKeepAwakeUnsupported
}

func (unsupportedInhibitor) Release() error {
	return nil
}
