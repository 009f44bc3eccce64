package differ

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aleister1102/siteeagle/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func observation(content, fingerprint string) *models.Observation {
	return &models.Observation{Content: content, Fingerprint: fingerprint}
}

func TestChangeDetector_Detect(t *testing.T) {
	cd := NewChangeDetector(zerolog.Nop())

	t.Run("no previous observation", func(t *testing.T) {
		d := cd.Detect(nil, observation("A", "fa"), false, "http://x")
		assert.False(t, d.Notify)
		assert.Empty(t, d.Payload)
	})

	t.Run("same fingerprint", func(t *testing.T) {
		d := cd.Detect(observation("A", "fa"), observation("A", "fa"), true, "http://x")
		assert.False(t, d.Notify)
	})

	t.Run("changed without diff", func(t *testing.T) {
		d := cd.Detect(observation("A", "fa"), observation("B", "fb"), false, "http://x")
		assert.True(t, d.Notify)
		assert.Equal(t, "Site (http://x) change from 'A' to 'B'", d.Payload)
	})

	t.Run("changed with diff", func(t *testing.T) {
		d := cd.Detect(observation("a\nb\nc", "f1"), observation("a\nB\nc", "f2"), true, "http://x")
		assert.True(t, d.Notify)
		assert.True(t, strings.HasPrefix(d.Payload, "--- http://x_before\n+++ http://x_after\n"))
		assert.Contains(t, d.Payload, "\n-b\n")
		assert.Contains(t, d.Payload, "\n+B\n")
	})
}

func TestFormatChangeMessage_NoTruncation(t *testing.T) {
	long := strings.Repeat("x", 10000)
	msg := FormatChangeMessage("http://x", long, "y")
	assert.Equal(t, "Site (http://x) change from '"+long+"' to 'y'", msg)
}

func TestChangeDetector_LogsLineStats(t *testing.T) {
	var logs bytes.Buffer
	cd := NewChangeDetector(zerolog.New(&logs))

	d := cd.Detect(observation("a\nb\nc\n", "f1"), observation("a\nB\nc\nd\n", "f2"), false, "http://x")
	assert.True(t, d.Notify)

	out := logs.String()
	assert.Contains(t, out, `"message":"Content changed"`)
	assert.Contains(t, out, `"lines_added":2`)
	assert.Contains(t, out, `"lines_deleted":1`)
}
