package scheduling_service

import (
	"fmt"
	"time"

	"github.com/minhanhng/salon-availability/internal/core/domain"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
)

const defaultOffReason = "Nghỉ"

// effectiveSchedule resolves the single DaySchedule applying to date:
// a date override wins over the weekly default. The override reason is
// carried along for unavailability messages.
func effectiveSchedule(workSchedule *domain.WorkSchedule, date time.Time) (domain.DaySchedule, string, bool) {
	if workSchedule == nil {
		return domain.DaySchedule{}, "", false
	}

	if override := workSchedule.OverrideFor(date); override != nil {
		return override.Schedule, override.Reason, true
	}

	if schedule, ok := workSchedule.DefaultSchedule[date.Weekday()]; ok {
		return schedule, "", true
	}

	return domain.DaySchedule{}, "", false
}

// ResolveEffectiveSchedule returns the DaySchedule in effect on date,
// or ok=false when the employee has no rule for it.
func ResolveEffectiveSchedule(workSchedule *domain.WorkSchedule, date time.Time) (domain.DaySchedule, bool) {
	schedule, _, ok := effectiveSchedule(workSchedule, date)
	return schedule, ok
}

// IsAvailableAt answers whether the employee may be booked at date+slot.
// Employees without any schedule configuration are bookable: absence of
// a rule never blocks a booking, only an explicit one does.
func IsAvailableAt(employee domain.Employee, date time.Time, slot json_types.TimeOfDay) domain.AvailabilityVerdict {
	schedule, overrideReason, ok := effectiveSchedule(employee.WorkSchedule, date)
	if !ok {
		return domain.AvailabilityVerdict{Available: true}
	}

	if schedule.WorkType == domain.WorkTypeOff && !schedule.HasWindow() {
		reason := overrideReason
		if reason == "" {
			reason = defaultOffReason
		}
		return domain.AvailabilityVerdict{Available: false, Reason: reason}
	}

	if schedule.HasWindow() {
		slotMin := slot.Minutes()
		startMin := schedule.StartTime.Minutes()
		endMin := schedule.EndTime.Minutes()

		if schedule.WorkType == domain.WorkTypeOff {
			// Partial off: only [start, end) is blocked
			if slotMin >= startMin && slotMin < endMin {
				reason := overrideReason
				if reason == "" {
					reason = fmt.Sprintf("%s %s-%s", defaultOffReason, schedule.StartTime, schedule.EndTime)
				}
				return domain.AvailabilityVerdict{Available: false, Reason: reason}
			}
			return domain.AvailabilityVerdict{Available: true}
		}

		// Working window: only [start, end) is bookable
		if slotMin < startMin || slotMin >= endMin {
			return domain.AvailabilityVerdict{
				Available: false,
				Reason:    fmt.Sprintf("Không trong giờ làm việc (%s-%s)", schedule.StartTime, schedule.EndTime),
			}
		}
	}

	return domain.AvailabilityVerdict{Available: true}
}

// ScheduleStatusFor maps the effective schedule to the coarse label the
// roster screens show for one date.
func ScheduleStatusFor(employee domain.Employee, date time.Time) domain.ScheduleStatus {
	schedule, overrideReason, ok := effectiveSchedule(employee.WorkSchedule, date)
	if !ok {
		return domain.ScheduleStatus{Status: domain.DayStatusWorking}
	}

	if schedule.WorkType == domain.WorkTypeOff {
		if !schedule.HasWindow() {
			details := overrideReason
			if details == "" {
				details = defaultOffReason
			}
			return domain.ScheduleStatus{Status: domain.DayStatusOff, Details: details}
		}
		return domain.ScheduleStatus{
			Status:  domain.DayStatusPartial,
			Details: fmt.Sprintf("%s %s-%s", defaultOffReason, schedule.StartTime, schedule.EndTime),
		}
	}

	if schedule.HasWindow() {
		return domain.ScheduleStatus{
			Status:  domain.DayStatusWorking,
			Details: fmt.Sprintf("%s-%s", schedule.StartTime, schedule.EndTime),
		}
	}

	return domain.ScheduleStatus{Status: domain.DayStatusWorking}
}
