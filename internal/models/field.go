package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Field is a request field that tolerates sloppy client JSON: a string, a
// number, or a list (first element wins) all decode to a plain string, and a
// missing or empty value decodes to "".
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = coerceField(v)
	return nil
}

func coerceField(v any) Field {
	switch t := v.(type) {
	case string:
		return Field(t)
	case float64:
		return Field(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		return Field(strconv.FormatBool(t))
	case []any:
		if len(t) == 0 {
			return ""
		}
		return coerceField(t[0])
	default:
		return ""
	}
}

// Bounded returns the trimmed value truncated to max characters. Every field
// goes through this before any parsing, so oversized input never reaches an
// outbound call.
func (f Field) Bounded(max int) string {
	s := strings.TrimSpace(string(f))
	if r := []rune(s); len(r) > max {
		s = string(r[:max])
	}
	return s
}
