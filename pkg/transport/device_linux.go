//go:build linux

package transport

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sys/unix"
)

// Device writes records to kernel log device nodes (for example
// /dev/log/main). Each Open maps to open(2) with O_WRONLY|O_CLOEXEC, each
// Writev to writev(2) on the resulting descriptor.
type Device struct{}

// NewDevice returns the kernel log device transport.
func NewDevice() *Device {
	return &Device{}
}

type deviceHandle struct {
	fd   int
	path string
}

func (h *deviceHandle) String() string {
	return h.path + " (fd " + strconv.Itoa(h.fd) + ")"
}

// Open opens the log device node at path for writing.
func (d *Device) Open(path string) (Handle, error) {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &deviceHandle{fd: fd, path: path}, nil
}

// Writev delivers segments through writev(2). EINTR surfaces as
// ErrInterrupted so the dispatcher's retry loop can absorb it.
func (d *Device) Writev(h Handle, segments [][]byte) (int, error) {
	dh, ok := h.(*deviceHandle)
	if !ok {
		return 0, fmt.Errorf("device: foreign handle %T", h)
	}
	n, err := unix.Writev(dh.fd, segments)
	if errors.Is(err, unix.EINTR) {
		return 0, ErrInterrupted
	}
	if err != nil {
		return 0, fmt.Errorf("writev %s: %w", dh.path, err)
	}
	return n, nil
}

// Close closes the underlying descriptor.
func (d *Device) Close(h Handle) error {
	dh, ok := h.(*deviceHandle)
	if !ok {
		return fmt.Errorf("device: foreign handle %T", h)
	}
	return unix.Close(dh.fd)
}

// Probe reports whether the device node at path is writable, via access(2).
func (d *Device) Probe(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
