//go:build !linux

package transport

import (
	"errors"
	"fmt"
)

var errNoLogDevice = errors.New("kernel log devices are only available on linux")

// Device is the kernel log device transport. On non-linux platforms every
// Open fails, which degrades the dispatcher to its null state on first use
// instead of breaking the build.
type Device struct{}

// NewDevice returns the kernel log device transport.
func NewDevice() *Device {
	return &Device{}
}

func (d *Device) Open(path string) (Handle, error) {
	return nil, fmt.Errorf("open %s: %w", path, errNoLogDevice)
}

func (d *Device) Writev(h Handle, segments [][]byte) (int, error) {
	return 0, errNoLogDevice
}

func (d *Device) Close(h Handle) error {
	return errNoLogDevice
}

func (d *Device) Probe(path string) bool {
	return false
}
