package json_types

import (
	"encoding/json"
)

// DefaultDurationMinutes is used when a duration field carries no
// parseable number at all.
const DefaultDurationMinutes = 30

// DurationText is a free-text appointment duration ("90 phút", "1 giờ 30").
// The stored records only guarantee a leading integer minute count, so
// Minutes extracts the first run of digits and falls back to
// DefaultDurationMinutes when there is none.
type DurationText struct {
	Text string
}

func (d DurationText) Minutes() int {
	value := 0
	found := false

	for _, r := range d.Text {
		if r >= '0' && r <= '9' {
			value = value*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}

	if !found {
		return DefaultDurationMinutes
	}
	return value
}

func (d DurationText) String() string {
	return d.Text
}

func (d *DurationText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	*d = DurationText{Text: str}
	return nil
}

func (d DurationText) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Text)
}
