// Package properties is the runtime property store consulted by the
// loggability policy. Values can change at any time while the process runs,
// so lookups are never cached by callers.
//
// The in-memory Store is the default backend. FileStore layers a YAML file on
// top of it and reloads when the file changes, watching via fsnotify with a
// polling fallback.
package properties
