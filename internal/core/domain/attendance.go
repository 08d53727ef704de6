package domain

import (
	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
)

type TimeRecordStatus string

const (
	TimeRecordStatusWorking   TimeRecordStatus = "working"
	TimeRecordStatusCompleted TimeRecordStatus = "completed"
	TimeRecordStatusAbsent    TimeRecordStatus = "absent"
)

// TimeRecord is one employee's check-in record for one date. An
// employee with no record for a date is treated as not on shift.
type TimeRecord struct {
	ID         uuid.UUID        `json:"id"`
	EmployeeID uuid.UUID        `json:"employeeId"`
	Date       json_types.Date  `json:"date"`
	Status     TimeRecordStatus `json:"status"`
}

// OnShift reports whether the record puts its employee on shift.
func (r TimeRecord) OnShift() bool {
	return r.Status != TimeRecordStatusAbsent
}
