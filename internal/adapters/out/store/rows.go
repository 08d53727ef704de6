package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/core/domain"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
)

// Row shapes as PostgREST returns them. Mapping to domain values is
// lenient on purpose: unparseable IDs become uuid.Nil and time strings
// go through the defensive json_types parsers, so one bad row cannot
// take the whole roster down.

type employeeRow struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Specialties []string `json:"specialties"`
}

type defaultScheduleRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Weekday      int     `json:"weekday"`
	WorkType     string  `json:"work_type"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

type overrideRow struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	WorkType   string  `json:"work_type"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	Reason     *string `json:"reason"`
	Position   int     `json:"position"`
}

type appointmentRow struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Duration string  `json:"duration"`
	StaffID  *string `json:"staff_id"`
	Staff    string  `json:"staff"`
	Status   string  `json:"status"`
}

type timeRecordRow struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func parseID(str string) uuid.UUID {
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseTimePtr(str *string) *json_types.TimeOfDay {
	if str == nil || *str == "" {
		return nil
	}
	t := json_types.ParseTimeOfDay(*str)
	return &t
}

func parseDateField(str string) json_types.Date {
	parsed, err := time.ParseInLocation("2006-01-02", str, time.UTC)
	if err != nil {
		return json_types.Date{}
	}
	return json_types.Date{Date: parsed}
}

func (r employeeRow) toDomain() domain.Employee {
	return domain.Employee{
		ID:          parseID(r.ID),
		Name:        r.Name,
		Role:        r.Role,
		Specialties: r.Specialties,
	}
}

func (r defaultScheduleRow) toDaySchedule() (time.Weekday, domain.DaySchedule) {
	return time.Weekday(r.Weekday), domain.DaySchedule{
		WorkType:  domain.WorkType(r.WorkType),
		StartTime: parseTimePtr(r.StartTime),
		EndTime:   parseTimePtr(r.EndTime),
	}
}

func (r overrideRow) toDomain() domain.ScheduleOverride {
	override := domain.ScheduleOverride{
		Date: parseDateField(r.Date),
		Schedule: domain.DaySchedule{
			WorkType:  domain.WorkType(r.WorkType),
			StartTime: parseTimePtr(r.StartTime),
			EndTime:   parseTimePtr(r.EndTime),
		},
	}
	if r.Reason != nil {
		override.Reason = *r.Reason
	}
	return override
}

func (r appointmentRow) toDomain() domain.Appointment {
	appointment := domain.Appointment{
		ID:       parseID(r.ID),
		Date:     parseDateField(r.Date),
		Time:     json_types.ParseTimeOfDay(r.Time),
		Duration: json_types.DurationText{Text: r.Duration},
		Staff:    r.Staff,
		Status:   domain.AppointmentStatus(r.Status),
	}
	if r.StaffID != nil {
		appointment.StaffID = parseID(*r.StaffID)
	}
	return appointment
}

func (r timeRecordRow) toDomain() domain.TimeRecord {
	return domain.TimeRecord{
		ID:         parseID(r.ID),
		EmployeeID: parseID(r.EmployeeID),
		Date:       parseDateField(r.Date),
		Status:     domain.TimeRecordStatus(r.Status),
	}
}
