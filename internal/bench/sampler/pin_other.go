//go:build !linux

package sampler

func pinThread(int) error {
	return ErrPinUnsupported
}
