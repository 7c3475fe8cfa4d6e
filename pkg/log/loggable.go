package log

import (
	"sync/atomic"

	"liblog/pkg/properties"
)

// Property keys consulted by IsLoggable.
const (
	loggablePrefix  = "log.tag."
	loggableDefault = "log.tag.DEFAULT"
)

// PropertyStore is the runtime property collaborator behind IsLoggable.
type PropertyStore interface {
	Get(key string) string
}

var propertyStore atomic.Pointer[PropertyStore]

func init() {
	var ps PropertyStore = properties.Default
	propertyStore.Store(&ps)
}

// SetPropertyStore installs the property backend consulted by IsLoggable.
// The default is the process-wide properties.Default store.
func SetPropertyStore(ps PropertyStore) {
	propertyStore.Store(&ps)
}

// IsLoggable reports whether a record at prio under tag passes the per-tag
// verbosity threshold. The threshold comes from the "log.tag.<tag>" property,
// falling back to "log.tag.DEFAULT", and defaults to Info when neither is
// set. Values are re-read on every call: properties change at runtime, so
// caching here would be wrong.
//
// This is advisory. Callers check it before composing expensive messages;
// the write path itself performs no filtering.
func IsLoggable(prio Priority, tag string) bool {
	ps := *propertyStore.Load()

	v := ""
	if tag != "" {
		v = ps.Get(loggablePrefix + tag)
	}
	if v == "" {
		v = ps.Get(loggableDefault)
	}

	threshold := PriorityInfo
	if v != "" {
		switch v[0] {
		case 'V':
			threshold = PriorityVerbose
		case 'D':
			threshold = PriorityDebug
		case 'I':
			threshold = PriorityInfo
		case 'W':
			threshold = PriorityWarn
		case 'E':
			threshold = PriorityError
		case 'S':
			threshold = PrioritySilent
		}
	}

	return prio >= threshold
}
