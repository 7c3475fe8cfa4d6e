// Package transport defines the adapter contract between the log write path
// and whatever actually carries record bytes: kernel log devices on a real
// device, systemd-journald on a development host, or an in-memory double in
// tests.
//
// The contract is deliberately small: open a channel by path, deliver an
// ordered list of segments as one vectored write, close the handle. Device
// and host builds differ only in which Transport they install. The
// write path itself never branches on the platform.
//
// # Implementations
//
//   - Device: real log device nodes, vectored writes via writev(2). Linux only.
//   - Journal: forwards decoded text records to systemd-journald. Useful when
//     running host-side without log devices.
//   - Fake: in-memory double that records every write and supports failure
//     injection. Used throughout the test suite.
//
// # Atomicity
//
// A Transport must deliver the segment list of a single Writev call as one
// indivisible unit relative to other Writev calls on the same handle. No
// ordering is promised across handles or across concurrent writers beyond
// that.
package transport
