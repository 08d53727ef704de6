package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/minhanhng/salon-availability/internal/config"
	"github.com/minhanhng/salon-availability/internal/core/domain"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
	"github.com/minhanhng/salon-availability/internal/core/ports/out"
)

// SupabaseAdapter implements StorePort against the salon's Supabase
// project. It reads the same tables the front-of-house app writes.
type SupabaseAdapter struct {
	client *supa.Client
	logger out.LoggerPort
}

func NewSupabaseAdapter(cfg *config.Config, logger out.LoggerPort) (*SupabaseAdapter, error) {
	client, err := supa.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey, nil)
	if err != nil {
		logger.Error("store.client.init_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &SupabaseAdapter{
		client: client,
		logger: logger,
	}, nil
}

func (a *SupabaseAdapter) GetEmployees(ctx context.Context) ([]domain.Employee, error) {
	a.logger.Info("store.employees.fetch", out.LogFields{})

	var employeeRows []employeeRow
	data, _, err := a.client.From("employees").
		Select("*", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &employeeRows)
	}
	if err != nil {
		a.logger.Error("store.employees.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("fetch employees: %w", err)
	}

	schedules, err := a.fetchWorkSchedules(ctx)
	if err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, 0, len(employeeRows))
	for _, row := range employeeRows {
		employee := row.toDomain()
		if schedule, ok := schedules[employee.ID]; ok {
			employee.WorkSchedule = schedule
		}
		employees = append(employees, employee)
	}

	a.logger.Debug("store.employees.fetch_success", out.LogFields{
		"employeesCount": len(employees),
	})

	return employees, nil
}

func (a *SupabaseAdapter) GetEmployee(ctx context.Context, employeeID uuid.UUID) (*domain.Employee, error) {
	a.logger.Info("store.employee.fetch", out.LogFields{
		"employeeId": employeeID,
	})

	var employeeRows []employeeRow
	data, _, err := a.client.From("employees").
		Select("*", "", false).
		Eq("id", employeeID.String()).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &employeeRows)
	}
	if err != nil {
		a.logger.Error("store.employee.fetch_failed", out.LogFields{
			"employeeId": employeeID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("fetch employee: %w", err)
	}

	if len(employeeRows) == 0 {
		return nil, fmt.Errorf("employee %s not found", employeeID)
	}

	employee := employeeRows[0].toDomain()

	schedule, err := a.fetchWorkSchedule(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	employee.WorkSchedule = schedule

	return &employee, nil
}

func (a *SupabaseAdapter) GetAppointments(ctx context.Context, date time.Time) ([]domain.Appointment, error) {
	dateKey := json_types.NewDate(date).Key()

	a.logger.Info("store.appointments.fetch", out.LogFields{
		"date": dateKey,
	})

	var rows []appointmentRow
	data, _, err := a.client.From("appointments").
		Select("*", "", false).
		Eq("date", dateKey).
		Order("time", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &rows)
	}
	if err != nil {
		a.logger.Error("store.appointments.fetch_failed", out.LogFields{
			"date":  dateKey,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("fetch appointments: %w", err)
	}

	appointments := make([]domain.Appointment, 0, len(rows))
	for _, row := range rows {
		appointments = append(appointments, row.toDomain())
	}

	a.logger.Debug("store.appointments.fetch_success", out.LogFields{
		"date":              dateKey,
		"appointmentsCount": len(appointments),
	})

	return appointments, nil
}

func (a *SupabaseAdapter) GetTimeRecords(ctx context.Context, date time.Time) ([]domain.TimeRecord, error) {
	dateKey := json_types.NewDate(date).Key()

	a.logger.Info("store.time_records.fetch", out.LogFields{
		"date": dateKey,
	})

	var rows []timeRecordRow
	data, _, err := a.client.From("time_records").
		Select("*", "", false).
		Eq("date", dateKey).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &rows)
	}
	if err != nil {
		a.logger.Error("store.time_records.fetch_failed", out.LogFields{
			"date":  dateKey,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("fetch time records: %w", err)
	}

	records := make([]domain.TimeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}

	return records, nil
}

func (a *SupabaseAdapter) fetchWorkSchedules(ctx context.Context) (map[uuid.UUID]*domain.WorkSchedule, error) {
	var defaultRows []defaultScheduleRow
	data, _, err := a.client.From("work_schedules").
		Select("*", "", false).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &defaultRows)
	}
	if err != nil {
		a.logger.Error("store.work_schedules.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("fetch work schedules: %w", err)
	}

	var overrideRows []overrideRow
	data, _, err = a.client.From("schedule_overrides").
		Select("*", "", false).
		Order("position", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &overrideRows)
	}
	if err != nil {
		a.logger.Error("store.schedule_overrides.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("fetch schedule overrides: %w", err)
	}

	return assembleWorkSchedules(defaultRows, overrideRows), nil
}

func (a *SupabaseAdapter) fetchWorkSchedule(ctx context.Context, employeeID uuid.UUID) (*domain.WorkSchedule, error) {
	var defaultRows []defaultScheduleRow
	data, _, err := a.client.From("work_schedules").
		Select("*", "", false).
		Eq("employee_id", employeeID.String()).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &defaultRows)
	}
	if err != nil {
		a.logger.Error("store.work_schedules.fetch_failed", out.LogFields{
			"employeeId": employeeID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("fetch work schedules: %w", err)
	}

	var overrideRows []overrideRow
	data, _, err = a.client.From("schedule_overrides").
		Select("*", "", false).
		Eq("employee_id", employeeID.String()).
		Order("position", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &overrideRows)
	}
	if err != nil {
		a.logger.Error("store.schedule_overrides.fetch_failed", out.LogFields{
			"employeeId": employeeID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("fetch schedule overrides: %w", err)
	}

	schedules := assembleWorkSchedules(defaultRows, overrideRows)
	return schedules[employeeID], nil
}

// assembleWorkSchedules groups per-weekday default rows and override
// rows into one WorkSchedule per employee. Employees appearing in
// neither table end up without a schedule, which downstream treats as
// fully bookable.
func assembleWorkSchedules(defaults []defaultScheduleRow, overrides []overrideRow) map[uuid.UUID]*domain.WorkSchedule {
	schedules := make(map[uuid.UUID]*domain.WorkSchedule)

	ensure := func(employeeID uuid.UUID, employeeName string) *domain.WorkSchedule {
		if schedule, ok := schedules[employeeID]; ok {
			return schedule
		}
		schedule := &domain.WorkSchedule{
			ID:              employeeID,
			EmployeeID:      employeeID,
			EmployeeName:    employeeName,
			DefaultSchedule: make(map[time.Weekday]domain.DaySchedule),
		}
		schedules[employeeID] = schedule
		return schedule
	}

	for _, row := range defaults {
		employeeID := parseID(row.EmployeeID)
		if employeeID == uuid.Nil {
			continue
		}
		weekday, daySchedule := row.toDaySchedule()
		ensure(employeeID, row.EmployeeName).DefaultSchedule[weekday] = daySchedule
	}

	for _, row := range overrides {
		employeeID := parseID(row.EmployeeID)
		if employeeID == uuid.Nil {
			continue
		}
		schedule := ensure(employeeID, "")
		schedule.Overrides = append(schedule.Overrides, row.toDomain())
	}

	return schedules
}
