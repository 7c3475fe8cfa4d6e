// Package log is the client write path of the logging facility: it frames a
// priority/tag/message triple (or a binary event tuple) into a multi-segment
// record and delivers it through one of four independent log channels.
//
// # Channels
//
// Records go to one of four fixed channels (Main, Radio, Events, System),
// each backed by its own output handle. The channels are opened lazily on the
// first write, so merely linking this package costs nothing at startup: a
// process that never logs never touches the devices.
//
// # Dispatch state machine
//
// The dispatcher starts Uninitialized. The first write (whichever goroutine
// gets there first) takes a process-wide lock and opens all four channels
// through the installed Transport:
//
//   - If Main, Radio and Events all open, the dispatcher goes LiveKernel.
//     A failed System open is tolerated by aliasing System to Main's handle.
//   - If any of Main, Radio or Events fails, every handle that did open is
//     closed again and the dispatcher goes Null for the rest of the process:
//     all writes return ErrChannelUnavailable immediately.
//
// The transition happens exactly once. After it, writes are lock-free; they
// read the published dispatch state atomically and go straight to the
// transport. Interrupted transport writes are retried transparently.
//
// # Degradation
//
// Delivery failure never crashes the caller. The one exception is Assert,
// which logs at PriorityFatal and then aborts the process by contract,
// whether or not the write got through.
//
// # Host execution
//
// On-device builds use the kernel device transport; host tooling installs a
// journald or in-memory transport via Configure before the first write.
package log
