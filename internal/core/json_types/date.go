package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(dateLayout, str)
	// Some older rows carry a full timestamp instead of a bare date
	if err != nil {
		parsedDate, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
		}
	}

	return parsedDate, nil
}

// Date is a calendar date ("yyyy-MM-dd") without a time component.
type Date struct {
	Date time.Time
}

// NewDate truncates t to its calendar date, keeping the location.
func NewDate(t time.Time) Date {
	return Date{Date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// Key returns the canonical "yyyy-MM-dd" form used for comparisons
// and cache keys.
func (d Date) Key() string {
	return d.Date.Format(dateLayout)
}

func (d Date) Weekday() time.Weekday {
	return d.Date.Weekday()
}

func (d Date) Equal(other Date) bool {
	return d.Key() == other.Key()
}

func (d Date) IsZero() bool {
	return d.Date.IsZero()
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' {
		str = str[1 : len(str)-1]
	}

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*d = Date{Date: parsedDate}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Key())
}
