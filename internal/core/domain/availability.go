package domain

type AvailabilityStatus string

const (
	AvailabilityStatusFree      AvailabilityStatus = "Rảnh"
	AvailabilityStatusFinishing AvailabilityStatus = "Sắp xong"
	AvailabilityStatusBusy      AvailabilityStatus = "Đang bận"
)

const (
	PriorityFree      = 1
	PriorityFinishing = 2
	PriorityBusy      = 3
)

// AvailabilityEntry is one row of the "who takes the next customer"
// ranking. Recomputed on every call, never persisted.
type AvailabilityEntry struct {
	Employee         Employee           `json:"employee"`
	Priority         int                `json:"priority"`
	Status           AvailabilityStatus `json:"status"`
	NextAvailable    string             `json:"nextAvailable"`
	AppointmentCount int                `json:"appointmentCount"`
}

// AvailabilityVerdict answers "may this employee be booked at this slot".
type AvailabilityVerdict struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type DayStatus string

const (
	DayStatusWorking DayStatus = "working"
	DayStatusOff     DayStatus = "off"
	DayStatusPartial DayStatus = "partial"
)

// ScheduleStatus is the coarse per-date schedule label shown on the
// staff roster screens.
type ScheduleStatus struct {
	Status  DayStatus `json:"status"`
	Details string    `json:"details,omitempty"`
}

// DaySnapshot bundles everything the ranker needs for one date. It is
// what the cache adapter stores per date key.
type DaySnapshot struct {
	Appointments []Appointment `json:"appointments"`
	TimeRecords  []TimeRecord  `json:"timeRecords"`
}
