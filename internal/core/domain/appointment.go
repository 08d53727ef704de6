package domain

import (
	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked service for one customer. StaffID is the
// stable join key to Employee; older rows predate it and only carry the
// staff display name, so Staff is kept as a legacy fallback.
type Appointment struct {
	ID       uuid.UUID               `json:"id"`
	Date     json_types.Date         `json:"date"`
	Time     json_types.TimeOfDay    `json:"time"`
	Duration json_types.DurationText `json:"duration"`
	StaffID  uuid.UUID               `json:"staffId,omitempty"`
	Staff    string                  `json:"staff"`
	Status   AppointmentStatus       `json:"status"`
}

// BelongsTo reports whether the appointment is assigned to the employee,
// preferring the stable StaffID and falling back to name matching for
// rows without one.
func (a Appointment) BelongsTo(employee Employee) bool {
	if a.StaffID != uuid.Nil {
		return a.StaffID == employee.ID
	}
	return a.Staff == employee.Name
}

// StartMinutes and EndMinutes bound the appointment as a half-open
// [start, end) interval in minutes since midnight.
func (a Appointment) StartMinutes() int {
	return a.Time.Minutes()
}

func (a Appointment) EndMinutes() int {
	return a.Time.Minutes() + a.Duration.Minutes()
}
