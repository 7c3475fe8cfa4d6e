package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"liblog/pkg/transport"
)

func testDispatcher(t *testing.T) (*dispatcher, *transport.Fake) {
	t.Helper()
	fake := transport.NewFake()
	return newDispatcher(fake, DefaultPaths()), fake
}

func TestDispatcherStartsUninitialized(t *testing.T) {
	d, fake := testDispatcher(t)

	assert.Equal(t, StateUninitialized, d.currentState())
	assert.Empty(t, fake.Writes(), "no transport activity before the first write")
}

func TestFirstWriteInitializesAndDelivers(t *testing.T) {
	d, fake := testDispatcher(t)

	n, err := d.write(ChannelMain, frameText(PriorityInfo, "X", "hello"))
	require.NoError(t, err)
	assert.Equal(t, 1+2+6, n)
	assert.Equal(t, StateLiveKernel, d.currentState())

	// The initializing caller's own write is not wasted.
	writes := fake.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, DefaultMainPath, writes[0].Path)
}

func TestInitFailureDegradesToNull(t *testing.T) {
	for _, path := range []string{DefaultMainPath, DefaultRadioPath, DefaultEventsPath} {
		t.Run(path, func(t *testing.T) {
			d, fake := testDispatcher(t)
			fake.FailOpen(path, errors.New("no such device"))

			_, err := d.write(ChannelMain, frameText(PriorityInfo, "X", "hello"))
			assert.ErrorIs(t, err, ErrChannelUnavailable)
			assert.Equal(t, StateNull, d.currentState())

			// Idempotent cleanup: every handle that did open was closed again.
			assert.Empty(t, fake.Leaked())
		})
	}
}

func TestNullStateIsPermanentAndBypassesTransport(t *testing.T) {
	d, fake := testDispatcher(t)
	fake.FailOpen(DefaultRadioPath, errors.New("no such device"))

	_, err := d.write(ChannelMain, frameText(PriorityInfo, "X", "a"))
	require.ErrorIs(t, err, ErrChannelUnavailable)

	// Later writes fail the same way without reaching the transport. A
	// primed write error must never surface because Writev is never called.
	fake.FailWrites(errors.New("should not be reached"))
	for i := 0; i < 3; i++ {
		_, err := d.write(ChannelEvents, frameEvent(7, []byte("p")))
		assert.ErrorIs(t, err, ErrChannelUnavailable)
	}
	assert.Empty(t, fake.Writes())
}

func TestSystemFailureAliasesToMain(t *testing.T) {
	d, fake := testDispatcher(t)
	fake.FailOpen(DefaultSystemPath, errors.New("no such device"))

	_, err := d.write(ChannelSystem, frameText(PriorityWarn, "sys", "boot"))
	require.NoError(t, err)
	assert.Equal(t, StateLiveKernel, d.currentState(), "System alone failing must not degrade the dispatcher")

	_, err = d.write(ChannelMain, frameText(PriorityWarn, "m", "x"))
	require.NoError(t, err)

	writes := fake.Writes()
	require.Len(t, writes, 2)
	assert.Equal(t, writes[0].HandleID, writes[1].HandleID, "System writes must reuse Main's handle")
	assert.Equal(t, DefaultMainPath, writes[0].Path)
}

func TestBadChannelFailsInEveryState(t *testing.T) {
	for _, ch := range []Channel{Channel(-1), channelCount, Channel(99)} {
		// Uninitialized.
		d, fake := testDispatcher(t)
		_, err := d.write(ch, frameText(PriorityInfo, "X", "m"))
		assert.ErrorIs(t, err, ErrBadChannel)
		assert.Equal(t, StateUninitialized, d.currentState(), "bad channel must not trigger initialization")
		assert.Empty(t, fake.Writes())

		// LiveKernel.
		_, err = d.write(ChannelMain, frameText(PriorityInfo, "X", "m"))
		require.NoError(t, err)
		_, err = d.write(ch, frameText(PriorityInfo, "X", "m"))
		assert.ErrorIs(t, err, ErrBadChannel)

		// Null.
		d2, fake2 := testDispatcher(t)
		fake2.FailOpen(DefaultMainPath, errors.New("gone"))
		d2.write(ChannelMain, frameText(PriorityInfo, "X", "m"))
		_, err = d2.write(ch, frameText(PriorityInfo, "X", "m"))
		assert.ErrorIs(t, err, ErrBadChannel)
	}
}

func TestInterruptedWritesRetryTransparently(t *testing.T) {
	d, fake := testDispatcher(t)

	// Resolve the state first so the interrupts hit the kernel write path.
	_, err := d.write(ChannelMain, frameText(PriorityInfo, "X", "warmup"))
	require.NoError(t, err)

	fake.InterruptNext(3)
	n, err := d.write(ChannelMain, frameText(PriorityInfo, "X", "hello"))
	require.NoError(t, err)
	assert.Equal(t, 1+2+6, n)

	writes := fake.Writes()
	require.Len(t, writes, 2, "interrupted attempts deliver nothing")
}

func TestTransportFailurePropagates(t *testing.T) {
	d, fake := testDispatcher(t)
	_, err := d.write(ChannelMain, frameText(PriorityInfo, "X", "warmup"))
	require.NoError(t, err)

	boom := errors.New("device wedged")
	fake.FailWrites(boom)
	_, err = d.write(ChannelMain, frameText(PriorityInfo, "X", "hello"))
	assert.ErrorIs(t, err, boom)

	// Not a state transition: clearing the fault clears the failure.
	fake.FailWrites(nil)
	_, err = d.write(ChannelMain, frameText(PriorityInfo, "X", "hello"))
	assert.NoError(t, err)
	assert.Equal(t, StateLiveKernel, d.currentState())
}

func TestConcurrentFirstWritesInitializeOnce(t *testing.T) {
	const writers = 64

	d, fake := testDispatcher(t)

	var g errgroup.Group
	for i := 0; i < writers; i++ {
		g.Go(func() error {
			_, err := d.write(ChannelMain, frameText(PriorityInfo, "X", "hello"))
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, StateLiveKernel, d.currentState())
	assert.Len(t, fake.Writes(), writers, "every caller's write must be delivered")

	// Exactly one initialization: four opens, no more, and nothing leaked
	// from a redundant attempt.
	seen := make(map[string]bool)
	for _, w := range fake.Writes() {
		seen[w.HandleID] = true
	}
	assert.Len(t, seen, 1, "all Main writes must share the single Main handle")
}

func TestConcurrentFirstWritesAgainstDeadDevice(t *testing.T) {
	const writers = 64

	d, fake := testDispatcher(t)
	fake.FailOpen(DefaultEventsPath, errors.New("no such device"))

	var g errgroup.Group
	for i := 0; i < writers; i++ {
		g.Go(func() error {
			_, err := d.write(ChannelMain, frameText(PriorityInfo, "X", "hello"))
			if !errors.Is(err, ErrChannelUnavailable) {
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait(), "every caller must observe the same terminal Null state")

	assert.Equal(t, StateNull, d.currentState())
	assert.Empty(t, fake.Leaked())
	assert.Empty(t, fake.Writes())
}

func TestDeviceAvailableCachesFirstProbe(t *testing.T) {
	d, fake := testDispatcher(t)

	assert.True(t, d.deviceAvailable())

	// The probe result is pinned for the process lifetime, even if the
	// device disappears afterwards.
	fake.FailOpen(DefaultMainPath, errors.New("gone"))
	assert.True(t, d.deviceAvailable())

	d2, fake2 := testDispatcher(t)
	fake2.FailOpen(DefaultMainPath, errors.New("gone"))
	assert.False(t, d2.deviceAvailable())
}

func TestHandleReportsUnopenedBeforeInit(t *testing.T) {
	d, _ := testDispatcher(t)
	assert.Nil(t, d.handle(ChannelMain))

	_, err := d.write(ChannelMain, frameText(PriorityInfo, "X", "m"))
	require.NoError(t, err)
	assert.NotNil(t, d.handle(ChannelMain))
	assert.Nil(t, d.handle(Channel(42)))
}
