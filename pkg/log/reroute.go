package log

import "strings"

// rerouteMarker prefixes the rewritten tag so downstream tooling can spot
// legacy callers that should move to the radio log API.
const rerouteMarker = "use-Rlog/RLOG-"

// maxRerouteTag is the content capacity of the rewritten tag: a 32-byte
// buffer minus the terminator the framer appends. The embedded original tag
// is silently truncated to fit.
const maxRerouteTag = 31

// Legacy telephony-subsystem tags. Writes carrying them are rerouted to the
// radio channel without the caller changing; downstream tooling matches on
// the exact rewritten text, so this table and the marker must not drift.
var (
	legacyRadioTags = map[string]bool{
		"HTC_RIL":       true,
		"AT":            true,
		"GSM":           true,
		"STK":           true,
		"CDMA":          true,
		"PHONE":         true,
		"SMS":           true,
		"KINETO":        true,
		"QC-NETMGR-LIB": true,
		"QC-QDP":        true,
		"Diag_Lib":      true,
	}
	legacyRadioPrefixes = []string{
		"RIL",
		"IMS",
		"KIPC",
		"Kineto",
		"QCRIL",
		"QC-RIL",
		"QC-QMI",
		"QC-ONCRPC",
		"QC-DSI",
	}
)

func isLegacyRadioTag(tag string) bool {
	if legacyRadioTags[tag] {
		return true
	}
	for _, p := range legacyRadioPrefixes {
		if strings.HasPrefix(tag, p) {
			return true
		}
	}
	return false
}

// reroute redirects legacy telephony tags to the radio channel and rewrites
// the tag with the deprecation marker. It is a no-op when the write is
// already bound for the radio channel, and pure otherwise.
func reroute(ch Channel, tag string) (Channel, string) {
	if ch == ChannelRadio || !isLegacyRadioTag(tag) {
		return ch, tag
	}
	rewritten := rerouteMarker + tag
	if len(rewritten) > maxRerouteTag {
		rewritten = rewritten[:maxRerouteTag]
	}
	return ChannelRadio, rewritten
}
