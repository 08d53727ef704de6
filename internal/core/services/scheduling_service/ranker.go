package scheduling_service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/core/domain"
)

// Below this many remaining minutes a busy employee counts as
// "about to finish" and jumps ahead of fully busy colleagues.
const finishingSoonMinutes = 15

const nextAvailableNow = "Ngay bây giờ"

// RankAvailability orders the on-shift employees by who can take the
// next customer. Employees without a time record for the date, or whose
// record is absent, are left out entirely. The result is a fresh slice;
// callers re-invoke as the clock or the day's data moves.
func RankAvailability(
	employees []domain.Employee,
	timeRecords []domain.TimeRecord,
	appointments []domain.Appointment,
	now time.Time,
) []domain.AvailabilityEntry {
	onShift := make(map[uuid.UUID]bool, len(timeRecords))
	for _, record := range timeRecords {
		if record.OnShift() {
			onShift[record.EmployeeID] = true
		}
	}

	nowMin := now.Hour()*60 + now.Minute()

	entries := make([]domain.AvailabilityEntry, 0, len(employees))
	for _, employee := range employees {
		if !onShift[employee.ID] {
			continue
		}

		count := 0
		entry := domain.AvailabilityEntry{
			Employee:      employee,
			Priority:      domain.PriorityFree,
			Status:        domain.AvailabilityStatusFree,
			NextAvailable: nextAvailableNow,
		}

		// Between appointments counts as free; only an appointment whose
		// [start, end) interval contains now makes the employee busy.
		// The first such appointment decides, should overlapping ones exist.
		currentFound := false
		for _, appointment := range appointments {
			if !appointment.BelongsTo(employee) {
				continue
			}
			count++
			if currentFound {
				continue
			}

			start := appointment.StartMinutes()
			end := appointment.EndMinutes()
			if nowMin < start || nowMin >= end {
				continue
			}
			currentFound = true

			remaining := end - nowMin
			entry.NextAvailable = fmt.Sprintf("%d phút nữa", remaining)
			if remaining <= finishingSoonMinutes {
				entry.Priority = domain.PriorityFinishing
				entry.Status = domain.AvailabilityStatusFinishing
			} else {
				entry.Priority = domain.PriorityBusy
				entry.Status = domain.AvailabilityStatusBusy
			}
		}

		entry.AppointmentCount = count
		entries = append(entries, entry)
	}

	return EntrySlice(entries).quickSort()
}
