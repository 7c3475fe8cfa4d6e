package transport

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// FakeWrite is one vectored write captured by the Fake transport.
type FakeWrite struct {
	// HandleID identifies the handle the write went to.
	HandleID string
	// Path is the channel path the handle was opened with.
	Path string
	// Segments is a deep copy of the written segment list, in order.
	Segments [][]byte
}

// Fake is an in-memory Transport for tests and host execution. It records
// every vectored write verbatim and can be primed to fail opens, interrupt
// writes, or fail writes outright.
type Fake struct {
	mu sync.Mutex

	failOpen   map[string]error
	writeErr   error
	interrupts int

	opened []string
	closed []string
	writes []FakeWrite
}

// NewFake returns an empty fake transport.
func NewFake() *Fake {
	return &Fake{failOpen: make(map[string]error)}
}

type fakeHandle struct {
	id   string
	path string
}

func (h *fakeHandle) String() string {
	return h.path + " (" + h.id + ")"
}

// FailOpen makes subsequent Open calls for path fail with err.
func (f *Fake) FailOpen(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOpen[path] = err
}

// FailWrites makes every subsequent Writev fail with err. Pass nil to clear.
func (f *Fake) FailWrites(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeErr = err
}

// InterruptNext makes the next n Writev calls return ErrInterrupted before
// delivering anything, mimicking signal delivery during writev(2).
func (f *Fake) InterruptNext(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interrupts = n
}

// Open opens an in-memory channel. Each handle gets a fresh identity so tests
// can tell aliased handles from independently opened ones.
func (f *Fake) Open(path string) (Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failOpen[path]; ok {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	h := &fakeHandle{id: uuid.NewString(), path: path}
	f.opened = append(f.opened, h.id)
	return h, nil
}

// Writev records the segment list and returns its total byte length.
func (f *Fake) Writev(h Handle, segments [][]byte) (int, error) {
	fh, ok := h.(*fakeHandle)
	if !ok {
		return 0, fmt.Errorf("fake: foreign handle %T", h)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.interrupts > 0 {
		f.interrupts--
		return 0, ErrInterrupted
	}
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	w := FakeWrite{HandleID: fh.id, Path: fh.path}
	n := 0
	for _, seg := range segments {
		w.Segments = append(w.Segments, append([]byte(nil), seg...))
		n += len(seg)
	}
	f.writes = append(f.writes, w)
	return n, nil
}

// Close records the handle as closed.
func (f *Fake) Close(h Handle) error {
	fh, ok := h.(*fakeHandle)
	if !ok {
		return fmt.Errorf("fake: foreign handle %T", h)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, fh.id)
	return nil
}

// Probe reports writability: true unless the path is primed to fail opening.
func (f *Fake) Probe(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, fails := f.failOpen[path]
	return !fails
}

// Writes returns the captured writes in order.
func (f *Fake) Writes() []FakeWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeWrite(nil), f.writes...)
}

// Leaked returns the ids of handles that were opened but never closed.
func (f *Fake) Leaked() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	closed := make(map[string]bool, len(f.closed))
	for _, id := range f.closed {
		closed[id] = true
	}
	var leaked []string
	for _, id := range f.opened {
		if !closed[id] {
			leaked = append(leaked, id)
		}
	}
	return leaked
}
