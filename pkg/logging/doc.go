// Package logging provides leveled, subsystem-tagged diagnostics for the CLI
// and the configuration loader, built on Go's standard slog package.
//
// This is the tool's own chatter about what it is doing (loading config,
// watching property files) and is entirely separate from the log write path
// in liblog/pkg/log, which is the product being delivered, not a diagnostic.
// The core write path never logs about itself.
//
// # Log Levels
//   - Debug: detailed information for debugging and development
//   - Info: general informational messages
//   - Warn: potential issues that do not stop the operation
//   - Error: failures and exceptional conditions
//
// # Usage
//
//	import "liblog/pkg/logging"
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("Config", "Loaded configuration from %s", path)
//	logging.Error("Properties", err, "reload failed")
//
// When Init has not been called the functions are no-ops, so importing
// packages stay silent inside library consumers.
package logging
