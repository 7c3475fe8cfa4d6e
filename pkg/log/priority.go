package log

import "strings"

// Priority is the severity of a record. Its numeric value is the first wire
// segment of every text record, so the values are part of the wire contract.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityDefault
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityFatal
	PrioritySilent
)

// String makes Priority satisfy fmt.Stringer.
func (p Priority) String() string {
	switch p {
	case PriorityVerbose:
		return "VERBOSE"
	case PriorityDebug:
		return "DEBUG"
	case PriorityInfo:
		return "INFO"
	case PriorityWarn:
		return "WARN"
	case PriorityError:
		return "ERROR"
	case PriorityFatal:
		return "FATAL"
	case PrioritySilent:
		return "SILENT"
	case PriorityDefault:
		return "DEFAULT"
	default:
		return "UNKNOWN"
	}
}

// ParsePriority parses a priority name or its single-letter shorthand
// ("v", "d", "i", "w", "e", "f", "s"). Unrecognized input maps to
// PriorityUnknown.
func ParsePriority(s string) Priority {
	switch strings.ToLower(s) {
	case "v", "verbose":
		return PriorityVerbose
	case "d", "debug":
		return PriorityDebug
	case "i", "info":
		return PriorityInfo
	case "w", "warn", "warning":
		return PriorityWarn
	case "e", "error":
		return PriorityError
	case "f", "fatal":
		return PriorityFatal
	case "s", "silent":
		return PrioritySilent
	case "default":
		return PriorityDefault
	default:
		return PriorityUnknown
	}
}
