package log

import "encoding/binary"

// maxMessage caps a fully rendered printf-style message, terminator included.
// Framing itself never truncates; only the formatting helpers apply the cap.
const maxMessage = 1024

// Record is the framed form of one log entry: an ordered segment list
// delivered to the transport as a single vectored write. Receivers decode
// segments positionally, so the order is part of the wire contract.
type Record [][]byte

// frameText builds the three-segment text record:
// [priority byte][tag bytes + NUL][message bytes + NUL].
func frameText(prio Priority, tag, msg string) Record {
	return Record{
		{byte(prio)},
		append([]byte(tag), 0),
		append([]byte(msg), 0),
	}
}

// frameEvent builds the two-segment untyped event record:
// [4-byte little-endian tag id][payload]. The payload carries no terminator;
// its length travels in the segment length.
func frameEvent(tagID uint32, payload []byte) Record {
	id := make([]byte, 4)
	binary.LittleEndian.PutUint32(id, tagID)
	return Record{id, payload}
}

// frameTypedEvent builds the three-segment typed event record:
// [4-byte tag id][1-byte type][payload].
func frameTypedEvent(tagID uint32, typ byte, payload []byte) Record {
	id := make([]byte, 4)
	binary.LittleEndian.PutUint32(id, tagID)
	return Record{id, {typ}, payload}
}

// clampMessage applies the formatting-path cap: at most maxMessage bytes
// including the terminator the framer appends.
func clampMessage(s string) string {
	if len(s) > maxMessage-1 {
		return s[:maxMessage-1]
	}
	return s
}
