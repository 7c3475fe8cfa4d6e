// Package config loads the CLI tool's configuration: which transport carries
// records, the device node path for each channel, and the optional runtime
// properties file backing the loggability policy.
//
// Configuration is a single YAML file. A missing file is not an error; the
// defaults describe a stock device (kernel transport, /dev/log nodes, no
// properties file). The library itself never reads configuration: transport
// selection for library consumers is a build and wiring concern of the
// embedding process.
package config
