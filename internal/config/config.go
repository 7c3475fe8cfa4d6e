package config

import "liblog/pkg/log"

// Transport backend names accepted in the config file.
const (
	TransportDevice  = "device"
	TransportJournal = "journal"
	TransportFake    = "fake"
)

// Config is the CLI tool configuration.
type Config struct {
	// Transport selects the backend: "device", "journal" or "fake".
	Transport string `yaml:"transport"`

	// Channels overrides the device node path per channel.
	Channels ChannelPaths `yaml:"channels"`

	// PropertiesFile is an optional YAML file of runtime properties
	// (log.tag.* verbosity thresholds). Empty disables the file store.
	PropertiesFile string `yaml:"propertiesFile"`
}

// ChannelPaths holds one device node path per channel.
type ChannelPaths struct {
	Main   string `yaml:"main"`
	Radio  string `yaml:"radio"`
	Events string `yaml:"events"`
	System string `yaml:"system"`
}

// Default returns the stock device configuration.
func Default() Config {
	return Config{
		Transport: TransportDevice,
		Channels: ChannelPaths{
			Main:   log.DefaultMainPath,
			Radio:  log.DefaultRadioPath,
			Events: log.DefaultEventsPath,
			System: log.DefaultSystemPath,
		},
	}
}

// Paths returns the channel paths in channel order, as the dispatcher
// expects them.
func (c Config) Paths() [4]string {
	return [4]string{c.Channels.Main, c.Channels.Radio, c.Channels.Events, c.Channels.System}
}
