package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Field
	}{
		{name: "string", raw: `{"v": "georgetown"}`, want: "georgetown"},
		{name: "integer", raw: `{"v": 3}`, want: "3"},
		{name: "decimal", raw: `{"v": 1.5}`, want: "1.5"},
		{name: "list takes first", raw: `{"v": ["2pm", "9am"]}`, want: "2pm"},
		{name: "empty list", raw: `{"v": []}`, want: ""},
		{name: "null", raw: `{"v": null}`, want: ""},
		{name: "absent", raw: `{}`, want: ""},
		{name: "nested list", raw: `{"v": [[3]]}`, want: "3"},
		{name: "object collapses to empty", raw: `{"v": {"a": 1}}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				V Field `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &payload))
			assert.Equal(t, tt.want, payload.V)
		})
	}
}

func TestFieldBounded(t *testing.T) {
	assert.Equal(t, "abc", Field("  abc  ").Bounded(10))
	assert.Equal(t, "abc", Field("abcdef").Bounded(3))
	assert.Equal(t, "", Field("   ").Bounded(10))
	// Truncation counts characters, not bytes.
	assert.Equal(t, "héé", Field("hééé").Bounded(3))
}
