package json_types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a minute-granularity wall-clock time ("HH:MM", 24-hour).
// Parsing is deliberately lenient: malformed components are read as 0
// instead of failing, so dirty schedule data never breaks a lookup.
// Validating schedule input belongs to the editing boundary, not here.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM". A missing colon or non-numeric part
// yields 0 for that component.
func ParseTimeOfDay(str string) TimeOfDay {
	parts := strings.SplitN(str, ":", 2)

	t := TimeOfDay{}
	if len(parts) > 0 {
		t.Hour, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		t.Minute, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}

	return t
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' {
		str = str[1 : len(str)-1]
	}

	*t = ParseTimeOfDay(str)
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
