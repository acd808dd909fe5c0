package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string // "" means unparseable
	}{
		{name: "12-hour evening", raw: "7pm", want: "19:00"},
		{name: "12-hour with minutes", raw: "7:30pm", want: "19:30"},
		{name: "midnight", raw: "12am", want: "00:00"},
		{name: "noon", raw: "12pm", want: "12:00"},
		{name: "24-hour", raw: "23:30", want: "23:30"},
		{name: "spaces and periods", raw: "7.30 P.M.", want: "19:30"},
		{name: "morning", raw: "9am", want: "09:00"},
		{name: "bad suffix", raw: "7xm", want: ""},
		{name: "bare number", raw: "7", want: ""},
		{name: "non-numeric hour", raw: "seven pm", want: ""},
		{name: "empty minutes", raw: "7:pm", want: ""},
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStartTime(tt.raw)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestClockTimeWithinWindow(t *testing.T) {
	var absent *ClockTime
	assert.True(t, absent.WithinWindow(13, 22), "absent time is vacuously in window")

	assert.True(t, (&ClockTime{Hour: 13}).WithinWindow(13, 22))
	assert.True(t, (&ClockTime{Hour: 22, Minute: 59}).WithinWindow(13, 22), "minutes do not count")
	assert.False(t, (&ClockTime{Hour: 12}).WithinWindow(13, 22))
	assert.False(t, (&ClockTime{Hour: 23}).WithinWindow(13, 22))
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64 // 0 means no valid value
	}{
		{name: "plain integer", raw: "3", want: 3},
		{name: "decimal", raw: "1.5", want: 1.5},
		{name: "embedded in text", raw: "about 2.5 hours", want: 2.5},
		{name: "trailing dot ignored", raw: "2.", want: 2},
		{name: "first number wins", raw: "2 to 4", want: 2},
		{name: "zero rejected", raw: "0", want: 0},
		{name: "no number", raw: "a few", want: 0},
		{name: "empty", raw: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseHours(tt.raw)
			if tt.want == 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestNormalizeDestination(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "region code gets country", raw: "austin, tx", want: "austin, tx, USA"},
		{name: "whitespace collapsed", raw: "austin,   tx", want: "austin, tx, USA"},
		{name: "periods stripped", raw: "St. Louis, MO", want: "St Louis, MO, USA"},
		{name: "already marked", raw: "austin, tx, usa", want: "austin, tx, usa"},
		{name: "no region code", raw: "berlin", want: "berlin"},
		{name: "code followed by zip", raw: "dallas, tx 75201", want: "dallas, tx 75201, USA"},
		{name: "three-letter word is not a code", raw: "dallas, texas", want: "dallas, texas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDestination(tt.raw))
		})
	}
}
