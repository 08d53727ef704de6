package in

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/core/domain"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
)

type SchedulingUseCase interface {
	// Ranked "who takes the next customer" list for a date
	RankAvailability(ctx context.Context, date time.Time, now time.Time) ([]domain.AvailabilityEntry, error)

	// Can this employee be booked at date+slot
	CheckSlot(ctx context.Context, employeeID uuid.UUID, date time.Time, slot json_types.TimeOfDay) (domain.AvailabilityVerdict, error)

	// Coarse schedule label for one date / for a week starting at from
	DayStatus(ctx context.Context, employeeID uuid.UUID, date time.Time) (domain.ScheduleStatus, error)
	WeekStatus(ctx context.Context, employeeID uuid.UUID, from time.Time) ([]domain.ScheduleStatus, error)

	// Cache invalidation, driven by the RabbitMQ listener and admin routes
	InvalidateDayCache(ctx context.Context, dateKey string) error
	InvalidateAllCache(ctx context.Context) error
	InvalidateRosterCache(ctx context.Context) error
}
