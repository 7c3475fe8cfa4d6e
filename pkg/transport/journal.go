package transport

import (
	"encoding/binary"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// Journal forwards records to systemd-journald. It is the host-side stand-in
// for the kernel log devices: a Journal channel is "open" as long as journald
// accepts messages, and records are decoded positionally (the receiver side
// of the wire contract) into journal fields.
type Journal struct{}

// NewJournal returns the journald transport.
func NewJournal() *Journal {
	return &Journal{}
}

type journalHandle struct {
	// channel is the base name of the device path this handle substitutes,
	// e.g. "main" for /dev/log/main. Attached to every entry as LOG_CHANNEL.
	channel string
}

func (h *journalHandle) String() string {
	return "journal:" + h.channel
}

// Open checks that journald is reachable and returns a handle tagged with the
// channel name derived from path.
func (j *Journal) Open(p string) (Handle, error) {
	if !journal.Enabled() {
		return nil, fmt.Errorf("open %s: %w", p, errors.New("journald socket not available"))
	}
	return &journalHandle{channel: path.Base(p)}, nil
}

// Writev decodes the segment list and sends one journal entry. Text records
// are three segments (priority byte, tag, message); event records start with
// a 4-byte tag identifier and are rendered as hex payloads.
func (j *Journal) Writev(h Handle, segments [][]byte) (int, error) {
	jh, ok := h.(*journalHandle)
	if !ok {
		return 0, fmt.Errorf("journal: foreign handle %T", h)
	}

	n := 0
	for _, seg := range segments {
		n += len(seg)
	}

	vars := map[string]string{"LOG_CHANNEL": jh.channel}

	if len(segments) == 3 && len(segments[0]) == 1 {
		// Text record: [priority][tag NUL][message NUL].
		tag := strings.TrimSuffix(string(segments[1]), "\x00")
		msg := strings.TrimSuffix(string(segments[2]), "\x00")
		if tag != "" {
			vars["SYSLOG_IDENTIFIER"] = tag
		}
		if err := journal.Send(msg, journalPriority(segments[0][0]), vars); err != nil {
			return 0, fmt.Errorf("journal send: %w", err)
		}
		return n, nil
	}

	if len(segments) >= 2 && len(segments[0]) == 4 {
		// Event record: [tag id][type?][payload].
		tagID := binary.LittleEndian.Uint32(segments[0])
		payload := segments[len(segments)-1]
		msg := fmt.Sprintf("event %d: %x", tagID, payload)
		if len(segments) == 3 && len(segments[1]) == 1 {
			msg = fmt.Sprintf("event %d (type %d): %x", tagID, segments[1][0], payload)
		}
		if err := journal.Send(msg, journal.PriInfo, vars); err != nil {
			return 0, fmt.Errorf("journal send: %w", err)
		}
		return n, nil
	}

	return 0, fmt.Errorf("journal: undecodable record of %d segments", len(segments))
}

// Close is a no-op; journald handles hold no resources.
func (j *Journal) Close(h Handle) error {
	if _, ok := h.(*journalHandle); !ok {
		return fmt.Errorf("journal: foreign handle %T", h)
	}
	return nil
}

// Probe reports whether journald is accepting messages.
func (j *Journal) Probe(string) bool {
	return journal.Enabled()
}

// journalPriority maps the record priority byte (Verbose=2 .. Fatal=7) onto
// syslog priorities.
func journalPriority(b byte) journal.Priority {
	switch b {
	case 2, 3: // verbose, debug
		return journal.PriDebug
	case 4: // info
		return journal.PriInfo
	case 5: // warn
		return journal.PriWarning
	case 6: // error
		return journal.PriErr
	case 7: // fatal
		return journal.PriCrit
	default:
		return journal.PriNotice
	}
}
