package transport

import "errors"

// ErrInterrupted reports a vectored write cut short by signal delivery before
// any progress was made. The dispatcher retries these transparently; callers
// never observe it.
var ErrInterrupted = errors.New("transport: write interrupted")

// Handle is an opaque, transport-owned reference to one open log channel.
type Handle interface {
	// String identifies the handle for diagnostics and status output.
	String() string
}

// Transport carries framed records to a log channel. Implementations must be
// safe for concurrent use: the write path issues Writev calls from many
// goroutines against handles opened once during initialization.
type Transport interface {
	// Open opens the channel addressed by path for writing.
	Open(path string) (Handle, error)

	// Writev delivers segments as a single atomic vectored write and returns
	// the number of bytes written. A result of ErrInterrupted means nothing
	// was delivered and the call may be retried.
	Writev(h Handle, segments [][]byte) (int, error)

	// Close releases a handle obtained from Open. Closing an aliased handle
	// twice is the caller's bug, not the transport's concern.
	Close(h Handle) error

	// Probe reports whether the channel at path is currently writable,
	// without opening it for subsequent writes.
	Probe(path string) bool
}
