package log

import "errors"

var (
	// ErrBadChannel reports a channel identifier outside the compiled-in set.
	// Returned immediately in every dispatcher state, never retried.
	ErrBadChannel = errors.New("log: bad channel")

	// ErrChannelUnavailable reports that the log channels could not be opened.
	// Once the dispatcher has degraded to its null state this is permanent
	// for the process lifetime.
	ErrChannelUnavailable = errors.New("log: channel unavailable")

	// ErrAlreadyInitialized reports a Configure call after the first write
	// has already resolved the dispatcher state.
	ErrAlreadyInitialized = errors.New("log: dispatcher already initialized")
)
