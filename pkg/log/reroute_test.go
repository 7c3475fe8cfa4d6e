package log

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRerouteLegacyTagToRadio(t *testing.T) {
	tests := []struct {
		name    string
		channel Channel
		tag     string
		wantCh  Channel
		wantTag string
	}{
		{
			name:    "RIL prefix from main",
			channel: ChannelMain,
			tag:     "RIL-foo",
			wantCh:  ChannelRadio,
			wantTag: "use-Rlog/RLOG-RIL-foo",
		},
		{
			name:    "exact GSM from system",
			channel: ChannelSystem,
			tag:     "GSM",
			wantCh:  ChannelRadio,
			wantTag: "use-Rlog/RLOG-GSM",
		},
		{
			name:    "IMS prefix",
			channel: ChannelMain,
			tag:     "IMSService",
			wantCh:  ChannelRadio,
			wantTag: "use-Rlog/RLOG-IMSService",
		},
		{
			name:    "QC-ONCRPC prefix",
			channel: ChannelMain,
			tag:     "QC-ONCRPC-worker",
			wantCh:  ChannelRadio,
			wantTag: "use-Rlog/RLOG-QC-ONCRPC-worker",
		},
		{
			name:    "near-miss of exact entry passes through",
			channel: ChannelMain,
			tag:     "GSM2",
			wantCh:  ChannelMain,
			wantTag: "GSM2",
		},
		{
			name:    "ordinary tag passes through",
			channel: ChannelMain,
			tag:     "ActivityManager",
			wantCh:  ChannelMain,
			wantTag: "ActivityManager",
		},
		{
			name:    "empty tag passes through",
			channel: ChannelMain,
			tag:     "",
			wantCh:  ChannelMain,
			wantTag: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, tag := reroute(tt.channel, tt.tag)
			assert.Equal(t, tt.wantCh, ch)
			assert.Equal(t, tt.wantTag, tag)
		})
	}
}

func TestRerouteNoOpWhenAlreadyRadio(t *testing.T) {
	for tag := range legacyRadioTags {
		ch, got := reroute(ChannelRadio, tag)
		assert.Equal(t, ChannelRadio, ch)
		assert.Equal(t, tag, got, "radio-bound writes keep their tag")
	}
	for _, prefix := range legacyRadioPrefixes {
		ch, got := reroute(ChannelRadio, prefix+"-x")
		assert.Equal(t, ChannelRadio, ch)
		assert.Equal(t, prefix+"-x", got)
	}
}

func TestRerouteTruncatesRewrittenTag(t *testing.T) {
	tag := "RIL-" + strings.Repeat("x", 64)
	ch, got := reroute(ChannelMain, tag)

	assert.Equal(t, ChannelRadio, ch)
	// 32-byte buffer minus the terminator the framer appends.
	assert.Len(t, got, 31)
	assert.Equal(t, "use-Rlog/RLOG-RIL-xxxxxxxxxxxxx", got)
	assert.True(t, strings.HasPrefix(got, rerouteMarker+"RIL-"))
}

func TestRerouteIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		ch, tag := reroute(ChannelMain, "SMS")
		assert.Equal(t, ChannelRadio, ch)
		assert.Equal(t, "use-Rlog/RLOG-SMS", tag)
	}
}
