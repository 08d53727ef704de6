package out

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/core/domain"
)

// StorePort is the remote database client boundary. Adapters own all
// record decoding; the core only ever sees validated domain values.
type StorePort interface {
	GetEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, employeeID uuid.UUID) (*domain.Employee, error)

	GetAppointments(ctx context.Context, date time.Time) ([]domain.Appointment, error)
	GetTimeRecords(ctx context.Context, date time.Time) ([]domain.TimeRecord, error)
}
