package log

import (
	"fmt"
	"sync"
	"sync/atomic"

	"liblog/pkg/transport"
)

// std is the process-wide dispatcher. It starts on the kernel device
// transport with the default channel paths; host tooling swaps it with
// Configure before the first write.
var std atomic.Pointer[dispatcher]

var configureMu sync.Mutex

func init() {
	std.Store(newDispatcher(transport.NewDevice(), DefaultPaths()))
}

// Configure installs a transport and channel path set for the process-wide
// dispatcher. It must run before the first write; once the dispatcher has
// resolved to its terminal state it returns ErrAlreadyInitialized and changes
// nothing.
func Configure(tr transport.Transport, paths [4]string) error {
	configureMu.Lock()
	defer configureMu.Unlock()
	if std.Load().currentState() != StateUninitialized {
		return ErrAlreadyInitialized
	}
	std.Store(newDispatcher(tr, paths))
	return nil
}

// Write logs a text record to the Main channel, subject to the legacy-tag
// reroute policy. It returns the transport's byte count.
func Write(prio Priority, tag, msg string) (int, error) {
	return WriteChannel(ChannelMain, prio, tag, msg)
}

// WriteChannel logs a text record to an explicit channel, subject to the
// legacy-tag reroute policy.
func WriteChannel(ch Channel, prio Priority, tag, msg string) (int, error) {
	ch, tag = reroute(ch, tag)
	return std.Load().write(ch, frameText(prio, tag, msg))
}

// Printf renders a message printf-style, caps it at the fixed message buffer
// size, and logs it to the Main channel.
func Printf(prio Priority, tag, format string, args ...any) (int, error) {
	return Write(prio, tag, clampMessage(fmt.Sprintf(format, args...)))
}

// PrintfChannel is Printf with an explicit channel.
func PrintfChannel(ch Channel, prio Priority, tag, format string, args ...any) (int, error) {
	return WriteChannel(ch, prio, tag, clampMessage(fmt.Sprintf(format, args...)))
}

// WriteEvent logs an untyped binary event record. Event records always land
// on the Events channel; the reroute policy does not apply.
func WriteEvent(tagID uint32, payload []byte) (int, error) {
	return std.Load().write(ChannelEvents, frameEvent(tagID, payload))
}

// WriteTypedEvent logs a binary event record carrying a one-byte type
// discriminator between tag id and payload.
func WriteTypedEvent(tagID uint32, typ byte, payload []byte) (int, error) {
	return std.Load().write(ChannelEvents, frameTypedEvent(tagID, typ, payload))
}

// CurrentState reports the process-wide dispatcher's lifecycle position.
func CurrentState() State {
	return std.Load().currentState()
}

// DeviceAvailable reports whether the Main log channel is writable. The
// probe runs once; its outcome, available or not, is cached for the process
// lifetime.
func DeviceAvailable() bool {
	return std.Load().deviceAvailable()
}

// ChannelHandle returns a diagnostic name for the channel's output handle,
// or "" while the channel is unopened. For status output.
func ChannelHandle(ch Channel) string {
	h := std.Load().handle(ch)
	if h == nil {
		return ""
	}
	return h.String()
}
