package out

import (
	"context"

	"github.com/minhanhng/salon-availability/internal/core/domain"
)

type CachePort interface {
	// Per-date snapshots (appointments + time records), keyed "yyyy-MM-dd"
	GetDaySnapshot(ctx context.Context, dateKey string) (*domain.DaySnapshot, bool)
	StoreDaySnapshot(ctx context.Context, dateKey string, snapshot domain.DaySnapshot)
	InvalidateDay(ctx context.Context, dateKey string)
	InvalidateAllDays(ctx context.Context)

	// Employee roster with schedules
	GetRoster(ctx context.Context) ([]domain.Employee, bool)
	StoreRoster(ctx context.Context, employees []domain.Employee)
	InvalidateRoster(ctx context.Context)
}
