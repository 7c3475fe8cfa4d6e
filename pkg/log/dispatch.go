package log

import (
	"errors"
	"sync"
	"sync/atomic"

	"liblog/pkg/transport"
)

// State is the dispatcher's lifecycle position. Transitions are monotonic:
// Uninitialized moves exactly once to LiveKernel or Null and never reverts.
type State int32

const (
	StateUninitialized State = iota
	StateLiveKernel
	StateNull
)

// String makes State satisfy fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLiveKernel:
		return "live"
	case StateNull:
		return "null"
	default:
		return "invalid"
	}
}

// writeFunc is the swappable dispatch behavior: installed once when the
// state resolves, read lock-free by every subsequent writer.
type writeFunc func(ch Channel, rec Record) (int, error)

// dispatcher routes framed records to channel handles. The zero of the state
// machine is the init behavior; the first write resolves it under initMu and
// publishes the terminal behavior through fn, after which the handle table is
// read-only and writes take no locks.
type dispatcher struct {
	tr    transport.Transport
	paths [channelCount]string

	initMu sync.Mutex
	fn     atomic.Pointer[writeFunc]
	state  atomic.Int32

	// handles is written only inside initMu during the single initialization
	// attempt; the atomic store of fn publishes it.
	handles [channelCount]transport.Handle

	probeOnce sync.Once
	available bool
}

func newDispatcher(tr transport.Transport, paths [channelCount]string) *dispatcher {
	d := &dispatcher{tr: tr, paths: paths}
	fn := writeFunc(d.writeInit)
	d.fn.Store(&fn)
	return d
}

// write routes one record. Out-of-range channels fail identically in every
// state, before the transport is touched.
func (d *dispatcher) write(ch Channel, rec Record) (int, error) {
	if !ch.Valid() {
		return 0, ErrBadChannel
	}
	fn := d.fn.Load()
	return (*fn)(ch, rec)
}

// writeInit is the Uninitialized behavior: resolve the terminal state under
// the lock, then complete the caller's own write against it. Concurrent first
// writers serialize here; exactly one performs the open sequence.
func (d *dispatcher) writeInit(ch Channel, rec Record) (int, error) {
	d.initMu.Lock()
	if State(d.state.Load()) == StateUninitialized {
		d.initLocked()
	}
	fn := d.fn.Load()
	d.initMu.Unlock()
	return (*fn)(ch, rec)
}

// initLocked opens every channel and installs the terminal state. Callers
// hold initMu. Main, Radio and Events are all-or-nothing: if any of them
// fails, whatever opened is closed again and the dispatcher degrades to Null
// for good. System alone is best-effort and falls back to Main's handle.
func (d *dispatcher) initLocked() {
	for ch := ChannelMain; ch < channelCount; ch++ {
		h, err := d.tr.Open(d.paths[ch])
		if err != nil {
			d.handles[ch] = nil
			continue
		}
		d.handles[ch] = h
	}

	if d.handles[ChannelMain] == nil || d.handles[ChannelRadio] == nil || d.handles[ChannelEvents] == nil {
		for ch := ChannelMain; ch < channelCount; ch++ {
			if d.handles[ch] != nil {
				d.tr.Close(d.handles[ch])
				d.handles[ch] = nil
			}
		}
		d.install(StateNull, d.writeNull)
		return
	}

	if d.handles[ChannelSystem] == nil {
		d.handles[ChannelSystem] = d.handles[ChannelMain]
	}
	d.install(StateLiveKernel, d.writeKernel)
}

func (d *dispatcher) install(s State, fn writeFunc) {
	d.fn.Store(&fn)
	d.state.Store(int32(s))
}

// writeKernel is the LiveKernel behavior: one vectored write, retried
// transparently while the transport reports interruption.
func (d *dispatcher) writeKernel(ch Channel, rec Record) (int, error) {
	h := d.handles[ch]
	for {
		n, err := d.tr.Writev(h, rec)
		if errors.Is(err, transport.ErrInterrupted) {
			continue
		}
		return n, err
	}
}

// writeNull is the Null behavior: fail immediately, forever, without touching
// the transport.
func (d *dispatcher) writeNull(Channel, Record) (int, error) {
	return 0, ErrChannelUnavailable
}

// currentState reports the dispatcher's lifecycle position.
func (d *dispatcher) currentState() State {
	return State(d.state.Load())
}

// deviceAvailable probes the Main channel path once and caches the outcome,
// either way, for the process lifetime.
func (d *dispatcher) deviceAvailable() bool {
	d.probeOnce.Do(func() {
		d.available = d.tr.Probe(d.paths[ChannelMain])
	})
	return d.available
}

// handle returns the channel's output handle, or nil while the dispatcher is
// still unresolved or the channel is unopened. Used by status reporting and
// tests.
func (d *dispatcher) handle(ch Channel) transport.Handle {
	if !ch.Valid() || d.currentState() == StateUninitialized {
		return nil
	}
	return d.handles[ch]
}
