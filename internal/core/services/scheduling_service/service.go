package scheduling_service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/config"
	"github.com/minhanhng/salon-availability/internal/core/domain"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
	"github.com/minhanhng/salon-availability/internal/core/ports/out"
)

type SchedulingService struct {
	storePort out.StorePort
	cachePort out.CachePort
	logger    out.LoggerPort
	cfg       *config.Config
}

func NewSchedulingService(
	storePort out.StorePort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *SchedulingService {
	return &SchedulingService{
		storePort: storePort,
		cachePort: cachePort,
		cfg:       cfg,
		logger:    logger.WithModule("SchedulingService"),
	}
}

func (s *SchedulingService) RankAvailability(ctx context.Context, date time.Time, now time.Time) ([]domain.AvailabilityEntry, error) {
	dateKey := json_types.NewDate(date).Key()

	s.logger.Info("availability.rank.started", out.LogFields{
		"date": dateKey,
		"now":  now.Format("15:04"),
	})

	employees, err := s.getRoster(ctx)
	if err != nil {
		s.logger.Error("availability.rank.roster.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("availability.rank.roster.fetch_failed: %w", err)
	}

	snapshot, err := s.getDaySnapshot(ctx, date)
	if err != nil {
		s.logger.Error("availability.rank.snapshot.fetch_failed", out.LogFields{
			"date":  dateKey,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("availability.rank.snapshot.fetch_failed: %w", err)
	}

	entries := RankAvailability(employees, snapshot.TimeRecords, snapshot.Appointments, now)

	s.logger.Debug("availability.rank.finished", out.LogFields{
		"date":         dateKey,
		"entriesCount": len(entries),
	})

	return entries, nil
}

func (s *SchedulingService) CheckSlot(ctx context.Context, employeeID uuid.UUID, date time.Time, slot json_types.TimeOfDay) (domain.AvailabilityVerdict, error) {
	employee, err := s.storePort.GetEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("slot.check.employee.fetch_failed", out.LogFields{
			"employeeId": employeeID,
			"error":      err.Error(),
		})
		return domain.AvailabilityVerdict{}, fmt.Errorf("slot.check.employee.fetch_failed: %w", err)
	}

	verdict := IsAvailableAt(*employee, date, slot)

	s.logger.Debug("slot.check.finished", out.LogFields{
		"employeeId": employeeID,
		"date":       json_types.NewDate(date).Key(),
		"slot":       slot.String(),
		"available":  verdict.Available,
	})

	return verdict, nil
}

func (s *SchedulingService) DayStatus(ctx context.Context, employeeID uuid.UUID, date time.Time) (domain.ScheduleStatus, error) {
	employee, err := s.storePort.GetEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("day_status.employee.fetch_failed", out.LogFields{
			"employeeId": employeeID,
			"error":      err.Error(),
		})
		return domain.ScheduleStatus{}, fmt.Errorf("day_status.employee.fetch_failed: %w", err)
	}

	return ScheduleStatusFor(*employee, date), nil
}

func (s *SchedulingService) WeekStatus(ctx context.Context, employeeID uuid.UUID, from time.Time) ([]domain.ScheduleStatus, error) {
	employee, err := s.storePort.GetEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("week_status.employee.fetch_failed", out.LogFields{
			"employeeId": employeeID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("week_status.employee.fetch_failed: %w", err)
	}

	statuses := make([]domain.ScheduleStatus, 0, 7)
	for day := 0; day < 7; day++ {
		statuses = append(statuses, ScheduleStatusFor(*employee, from.AddDate(0, 0, day)))
	}

	return statuses, nil
}

func (s *SchedulingService) getRoster(ctx context.Context) ([]domain.Employee, error) {
	if s.cacheEnabled() {
		if employees, exists := s.cachePort.GetRoster(ctx); exists {
			s.logger.Debug("roster.cache.hit", out.LogFields{
				"employeesCount": len(employees),
			})
			return employees, nil
		}
		s.logger.Debug("roster.cache.miss", out.LogFields{})
	}

	employees, err := s.storePort.GetEmployees(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled() {
		s.cachePort.StoreRoster(ctx, employees)
	}

	return employees, nil
}

func (s *SchedulingService) getDaySnapshot(ctx context.Context, date time.Time) (*domain.DaySnapshot, error) {
	dateKey := json_types.NewDate(date).Key()

	if s.cacheEnabled() {
		if snapshot, exists := s.cachePort.GetDaySnapshot(ctx, dateKey); exists {
			s.logger.Debug("day_snapshot.cache.hit", out.LogFields{
				"date":              dateKey,
				"appointmentsCount": len(snapshot.Appointments),
			})
			return snapshot, nil
		}
		s.logger.Debug("day_snapshot.cache.miss", out.LogFields{
			"date": dateKey,
		})
	}

	appointments, err := s.storePort.GetAppointments(ctx, date)
	if err != nil {
		return nil, err
	}

	timeRecords, err := s.storePort.GetTimeRecords(ctx, date)
	if err != nil {
		return nil, err
	}

	snapshot := domain.DaySnapshot{
		Appointments: appointments,
		TimeRecords:  timeRecords,
	}

	if s.cacheEnabled() {
		s.cachePort.StoreDaySnapshot(ctx, dateKey, snapshot)
	}

	return &snapshot, nil
}

func (s *SchedulingService) InvalidateDayCache(ctx context.Context, dateKey string) error {
	if !s.cacheEnabled() {
		return nil
	}

	s.cachePort.InvalidateDay(ctx, dateKey)
	return nil
}

func (s *SchedulingService) InvalidateAllCache(ctx context.Context) error {
	if !s.cacheEnabled() {
		return nil
	}

	s.cachePort.InvalidateAllDays(ctx)
	s.cachePort.InvalidateRoster(ctx)
	return nil
}

func (s *SchedulingService) InvalidateRosterCache(ctx context.Context) error {
	if !s.cacheEnabled() {
		return nil
	}

	s.cachePort.InvalidateRoster(ctx)
	return nil
}

func (s *SchedulingService) cacheEnabled() bool {
	return s.cachePort != nil && s.cfg.Cache.Enabled
}
