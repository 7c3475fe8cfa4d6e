package log

import "strings"

// Channel identifies one of the fixed log channels. The set is compiled in;
// channels are never created or destroyed at runtime.
type Channel int

const (
	ChannelMain Channel = iota
	ChannelRadio
	ChannelEvents
	ChannelSystem

	channelCount
)

// Default device node paths, one per channel.
const (
	DefaultMainPath   = "/dev/log/main"
	DefaultRadioPath  = "/dev/log/radio"
	DefaultEventsPath = "/dev/log/events"
	DefaultSystemPath = "/dev/log/system"
)

// DefaultPaths returns the device node path for every channel in channel
// order.
func DefaultPaths() [4]string {
	return [4]string{DefaultMainPath, DefaultRadioPath, DefaultEventsPath, DefaultSystemPath}
}

// Valid reports whether c names an existing channel.
func (c Channel) Valid() bool {
	return c >= ChannelMain && c < channelCount
}

// String makes Channel satisfy fmt.Stringer.
func (c Channel) String() string {
	switch c {
	case ChannelMain:
		return "main"
	case ChannelRadio:
		return "radio"
	case ChannelEvents:
		return "events"
	case ChannelSystem:
		return "system"
	default:
		return "invalid"
	}
}

// ParseChannel parses a channel name. The second result is false for unknown
// names.
func ParseChannel(s string) (Channel, bool) {
	switch strings.ToLower(s) {
	case "main":
		return ChannelMain, true
	case "radio":
		return ChannelRadio, true
	case "events":
		return ChannelEvents, true
	case "system":
		return ChannelSystem, true
	default:
		return Channel(-1), false
	}
}
