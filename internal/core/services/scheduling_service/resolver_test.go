package scheduling_service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/core/domain"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
)

func timeOfDay(str string) *json_types.TimeOfDay {
	t := json_types.ParseTimeOfDay(str)
	return &t
}

// 2025-06-02 is a Monday, 2025-06-01 a Sunday.
var (
	monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
)

func employeeWith(schedule *domain.WorkSchedule) domain.Employee {
	return domain.Employee{
		ID:           uuid.MustParse("7c9a1f9e-0b1d-4c5e-9f40-111111111111"),
		Name:         "Mai",
		Role:         "stylist",
		WorkSchedule: schedule,
	}
}

func TestIsAvailableAtNoSchedule(t *testing.T) {
	employee := employeeWith(nil)

	verdict := IsAvailableAt(employee, monday, json_types.ParseTimeOfDay("10:00"))
	if !verdict.Available {
		t.Fatalf("employee without schedule must be bookable, got %+v", verdict)
	}
}

func TestIsAvailableAtNoRuleForWeekday(t *testing.T) {
	employee := employeeWith(&domain.WorkSchedule{
		DefaultSchedule: map[time.Weekday]domain.DaySchedule{
			time.Monday: {WorkType: domain.WorkTypeOff},
		},
	})

	// Sunday has no rule, so booking is allowed
	verdict := IsAvailableAt(employee, sunday, json_types.ParseTimeOfDay("10:00"))
	if !verdict.Available {
		t.Fatalf("weekday without rule must be bookable, got %+v", verdict)
	}
}

func TestIsAvailableAtFullDayOff(t *testing.T) {
	employee := employeeWith(&domain.WorkSchedule{
		DefaultSchedule: map[time.Weekday]domain.DaySchedule{
			time.Monday: {WorkType: domain.WorkTypeOff},
		},
	})

	for _, slot := range []string{"00:00", "08:00", "12:00", "23:59"} {
		verdict := IsAvailableAt(employee, monday, json_types.ParseTimeOfDay(slot))
		if verdict.Available {
			t.Errorf("slot %s on a full day off must be blocked", slot)
		}
		if verdict.Reason != "Nghỉ" {
			t.Errorf("slot %s: reason=%q, want %q", slot, verdict.Reason, "Nghỉ")
		}
	}
}

func TestIsAvailableAtPartialOff(t *testing.T) {
	employee := employeeWith(&domain.WorkSchedule{
		DefaultSchedule: map[time.Weekday]domain.DaySchedule{
			time.Monday: {
				WorkType:  domain.WorkTypeOff,
				StartTime: timeOfDay("12:00"),
				EndTime:   timeOfDay("13:00"),
			},
		},
	})

	cases := []struct {
		slot      string
		available bool
	}{
		{"11:59", true},
		{"12:00", false},
		{"12:59", false},
		{"13:00", true},
	}

	for _, tt := range cases {
		verdict := IsAvailableAt(employee, monday, json_types.ParseTimeOfDay(tt.slot))
		if verdict.Available != tt.available {
			t.Errorf("slot %s: available=%v, want %v", tt.slot, verdict.Available, tt.available)
		}
		if !tt.available && verdict.Reason != "Nghỉ 12:00-13:00" {
			t.Errorf("slot %s: reason=%q, want %q", tt.slot, verdict.Reason, "Nghỉ 12:00-13:00")
		}
	}
}

func TestIsAvailableAtWorkingWindow(t *testing.T) {
	employee := employeeWith(&domain.WorkSchedule{
		DefaultSchedule: map[time.Weekday]domain.DaySchedule{
			time.Monday: {
				WorkType:  domain.WorkTypeFull,
				StartTime: timeOfDay("08:00"),
				EndTime:   timeOfDay("17:00"),
			},
		},
	})

	cases := []struct {
		slot      string
		available bool
	}{
		{"07:59", false},
		{"08:00", true},
		{"09:00", true},
		{"16:59", true},
		{"17:00", false},
		{"18:00", false},
	}

	for _, tt := range cases {
		verdict := IsAvailableAt(employee, monday, json_types.ParseTimeOfDay(tt.slot))
		if verdict.Available != tt.available {
			t.Errorf("slot %s: available=%v, want %v", tt.slot, verdict.Available, tt.available)
		}
		if !tt.available && verdict.Reason != "Không trong giờ làm việc (08:00-17:00)" {
			t.Errorf("slot %s: reason=%q", tt.slot, verdict.Reason)
		}
	}
}

func TestOverridePrecedence(t *testing.T) {
	schedule := &domain.WorkSchedule{
		DefaultSchedule: map[time.Weekday]domain.DaySchedule{
			time.Monday: {
				WorkType:  domain.WorkTypeFull,
				StartTime: timeOfDay("08:00"),
				EndTime:   timeOfDay("17:00"),
			},
		},
		Overrides: []domain.ScheduleOverride{
			{
				Date:     json_types.NewDate(monday),
				Schedule: domain.DaySchedule{WorkType: domain.WorkTypeOff},
				Reason:   "Nghỉ phép",
			},
		},
	}

	resolved, ok := ResolveEffectiveSchedule(schedule, monday)
	if !ok {
		t.Fatal("expected an effective schedule")
	}
	if resolved.WorkType != domain.WorkTypeOff {
		t.Errorf("override must win over default, got workType=%s", resolved.WorkType)
	}

	verdict := IsAvailableAt(employeeWith(schedule), monday, json_types.ParseTimeOfDay("09:00"))
	if verdict.Available {
		t.Error("override off-day must block booking")
	}
	if verdict.Reason != "Nghỉ phép" {
		t.Errorf("reason=%q, want override reason %q", verdict.Reason, "Nghỉ phép")
	}
}

func TestDuplicateOverridesFirstMatchWins(t *testing.T) {
	schedule := &domain.WorkSchedule{
		Overrides: []domain.ScheduleOverride{
			{
				Date:     json_types.NewDate(monday),
				Schedule: domain.DaySchedule{WorkType: domain.WorkTypeOff},
				Reason:   "first",
			},
			{
				Date:     json_types.NewDate(monday),
				Schedule: domain.DaySchedule{WorkType: domain.WorkTypeFull},
				Reason:   "second",
			},
		},
	}

	override := schedule.OverrideFor(monday)
	if override == nil {
		t.Fatal("expected an override")
	}
	if override.Reason != "first" {
		t.Errorf("reason=%q, want first override to win", override.Reason)
	}
}

func TestIsAvailableAtWorkTypeWithoutTimes(t *testing.T) {
	employee := employeeWith(&domain.WorkSchedule{
		DefaultSchedule: map[time.Weekday]domain.DaySchedule{
			time.Monday: {WorkType: domain.WorkTypeFull},
		},
	})

	verdict := IsAvailableAt(employee, monday, json_types.ParseTimeOfDay("03:00"))
	if !verdict.Available {
		t.Fatalf("working type without a window must not constrain, got %+v", verdict)
	}
}

func TestScheduleStatusFor(t *testing.T) {
	cases := []struct {
		name    string
		day     domain.DaySchedule
		status  domain.DayStatus
		details string
	}{
		{
			name:    "full day off",
			day:     domain.DaySchedule{WorkType: domain.WorkTypeOff},
			status:  domain.DayStatusOff,
			details: "Nghỉ",
		},
		{
			name: "partial off",
			day: domain.DaySchedule{
				WorkType:  domain.WorkTypeOff,
				StartTime: timeOfDay("12:00"),
				EndTime:   timeOfDay("13:00"),
			},
			status:  domain.DayStatusPartial,
			details: "Nghỉ 12:00-13:00",
		},
		{
			name: "working window",
			day: domain.DaySchedule{
				WorkType:  domain.WorkTypeFull,
				StartTime: timeOfDay("08:00"),
				EndTime:   timeOfDay("17:00"),
			},
			status:  domain.DayStatusWorking,
			details: "08:00-17:00",
		},
		{
			name:   "working no window",
			day:    domain.DaySchedule{WorkType: domain.WorkTypeCustom},
			status: domain.DayStatusWorking,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			employee := employeeWith(&domain.WorkSchedule{
				DefaultSchedule: map[time.Weekday]domain.DaySchedule{
					time.Monday: tt.day,
				},
			})

			got := ScheduleStatusFor(employee, monday)
			if got.Status != tt.status {
				t.Errorf("status=%s, want %s", got.Status, tt.status)
			}
			if got.Details != tt.details {
				t.Errorf("details=%q, want %q", got.Details, tt.details)
			}
		})
	}
}

func TestScheduleStatusForNoSchedule(t *testing.T) {
	got := ScheduleStatusFor(employeeWith(nil), monday)
	if got.Status != domain.DayStatusWorking {
		t.Errorf("status=%s, want working", got.Status)
	}
}

func TestIsAvailableAtIdempotent(t *testing.T) {
	employee := employeeWith(&domain.WorkSchedule{
		DefaultSchedule: map[time.Weekday]domain.DaySchedule{
			time.Monday: {
				WorkType:  domain.WorkTypeFull,
				StartTime: timeOfDay("08:00"),
				EndTime:   timeOfDay("17:00"),
			},
		},
	})

	slot := json_types.ParseTimeOfDay("18:00")
	first := IsAvailableAt(employee, monday, slot)
	second := IsAvailableAt(employee, monday, slot)
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}
