package quote

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a parsed 24-hour wall-clock time.
type ClockTime struct {
	Hour   int
	Minute int
}

func (t *ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// WithinWindow reports whether the hour component falls inside
// [startHour, endHour]. A nil time is vacuously inside: requests that carry
// no start time are never rejected on it. Minutes do not count toward the
// window.
func (t *ClockTime) WithinWindow(startHour, endHour int) bool {
	if t == nil {
		return true
	}
	return startHour <= t.Hour && t.Hour <= endHour
}

// parseStartTime accepts "7pm", "7:30 pm", "19:30" and the like. Whitespace
// and periods are ignored, so "7.30 P.M." works too. Anything else returns
// nil.
func parseStartTime(raw string) *ClockTime {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil
	}

	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		suffix := s[len(s)-2:]
		clock := s[:len(s)-2]
		hoursPart, minutesPart := clock, "00"
		if i := strings.Index(clock, ":"); i >= 0 {
			hoursPart, minutesPart = clock[:i], clock[i+1:]
		}
		hh, err := strconv.Atoi(hoursPart)
		if err != nil {
			return nil
		}
		mm, err := strconv.Atoi(minutesPart)
		if err != nil {
			return nil
		}
		if suffix == "pm" && hh != 12 {
			hh += 12
		}
		if suffix == "am" && hh == 12 {
			hh = 0
		}
		return &ClockTime{Hour: hh, Minute: mm}
	}

	if i := strings.Index(s, ":"); i >= 0 {
		hh, err := strconv.Atoi(s[:i])
		if err != nil {
			return nil
		}
		mm, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return nil
		}
		return &ClockTime{Hour: hh, Minute: mm}
	}

	return nil
}

// parseHours pulls the first decimal number out of free text ("about 2.5
// hours" resolves to 2.5) and returns it when positive.
func parseHours(raw string) *float64 {
	start := -1
	for i := 0; i < len(raw); i++ {
		if isDigit(raw[i]) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}
	end := start
	for end < len(raw) && isDigit(raw[end]) {
		end++
	}
	// A fractional part counts only when at least one digit follows the dot.
	if end+1 < len(raw) && raw[end] == '.' && isDigit(raw[end+1]) {
		end++
		for end < len(raw) && isDigit(raw[end]) {
			end++
		}
	}
	value, err := strconv.ParseFloat(raw[start:end], 64)
	if err != nil || value <= 0 {
		return nil
	}
	return &value
}

// normalizeDestination cleans destination text for a second geocoding
// attempt: periods become spaces, runs of whitespace collapse, and a trailing
// two-letter region code gets ", USA" appended. Geocoding succeeds more often
// on the disambiguated form.
func normalizeDestination(text string) string {
	cleaned := strings.Join(strings.Fields(strings.ReplaceAll(text, ".", " ")), " ")
	if hasRegionCode(cleaned) && !strings.Contains(strings.ToLower(cleaned), "usa") {
		cleaned += ", USA"
	}
	return cleaned
}

// hasRegionCode reports whether the text contains a comma followed by exactly
// two letters, e.g. "austin, tx" or "austin, tx 78701".
func hasRegionCode(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			continue
		}
		j := i + 1
		for j < len(s) && s[j] == ' ' {
			j++
		}
		if j+2 <= len(s) && isLetter(s[j]) && isLetter(s[j+1]) {
			if j+2 == len(s) || !isWordByte(s[j+2]) {
				return true
			}
		}
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isWordByte(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_'
}
