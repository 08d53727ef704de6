package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
)

type WorkType string

const (
	WorkTypeOff     WorkType = "off"
	WorkTypeFull    WorkType = "full"
	WorkTypeHalf    WorkType = "half"
	WorkTypeQuarter WorkType = "quarter"
	WorkTypeCustom  WorkType = "custom"
)

// DaySchedule describes one day of a work schedule. The meaning of the
// time window depends on WorkType:
//   - off with no times: unavailable the whole day
//   - off with both times: unavailable only inside [StartTime, EndTime)
//   - working type with both times: available only inside [StartTime, EndTime)
//   - working type with no times: available all day, no constraint
type DaySchedule struct {
	WorkType  WorkType              `json:"workType"`
	StartTime *json_types.TimeOfDay `json:"startTime,omitempty"`
	EndTime   *json_types.TimeOfDay `json:"endTime,omitempty"`
}

// HasWindow reports whether both ends of the time window are set.
// A single set end is treated as no window, same as the booking screens do.
func (d DaySchedule) HasWindow() bool {
	return d.StartTime != nil && d.EndTime != nil
}

// ScheduleOverride replaces the weekly default for a single date.
type ScheduleOverride struct {
	Date     json_types.Date `json:"date"`
	Schedule DaySchedule     `json:"schedule"`
	Reason   string          `json:"reason,omitempty"`
}

// WorkSchedule is an employee's weekly default schedule plus
// date-specific overrides. Weekdays missing from DefaultSchedule carry
// no rule for that day.
type WorkSchedule struct {
	ID              uuid.UUID                    `json:"id"`
	EmployeeID      uuid.UUID                    `json:"employeeId"`
	EmployeeName    string                       `json:"employeeName"`
	DefaultSchedule map[time.Weekday]DaySchedule `json:"defaultSchedule"`
	Overrides       []ScheduleOverride           `json:"scheduleOverrides"`
}

// OverrideFor returns the override covering date, or nil. When duplicate
// overrides exist for the same date, the first one in slice order wins;
// the store keeps overrides in insertion order so the result is stable.
func (w *WorkSchedule) OverrideFor(date time.Time) *ScheduleOverride {
	dateKey := json_types.NewDate(date).Key()

	for i := range w.Overrides {
		if w.Overrides[i].Date.Key() == dateKey {
			return &w.Overrides[i]
		}
	}

	return nil
}
