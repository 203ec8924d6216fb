package ports

import (
	"context"
	"time"

	"github.com/worksync/attendance-system/internal/core/domain"
)

// AttendanceRepository defines persistence operations for the attendance ledger.
type AttendanceRepository interface {
	Create(ctx context.Context, r *domain.AttendanceRecord) (*domain.AttendanceRecord, error)
	// FindOpen returns the employee's open record (check_out null), latest
	// check-in first, or domain.ErrNoActiveCheckIn when there is none.
	FindOpen(ctx context.Context, employeeID string) (*domain.AttendanceRecord, error)
	// Close sets check_out on the record with the given id.
	Close(ctx context.Context, id string, checkOut time.Time) (*domain.AttendanceRecord, error)
	// FindByDay returns the employee's latest record whose date falls within
	// [day, day+24h), or nil when there is none.
	FindByDay(ctx context.Context, employeeID string, day time.Time) (*domain.AttendanceRecord, error)
	// ListRecent returns up to limit records for the employee, newest check-in first.
	ListRecent(ctx context.Context, employeeID string, limit int) ([]*domain.AttendanceRecord, error)
	// CountCheckInsSince counts records with check_in >= since.
	CountCheckInsSince(ctx context.Context, since time.Time) (int64, error)
	// CountCheckInsBetween counts records with check_in in [from, to).
	CountCheckInsBetween(ctx context.Context, from, to time.Time) (int64, error)
	// CountOpen counts records with check_out null across all employees.
	CountOpen(ctx context.Context) (int64, error)
	// DeleteByEmployee removes all records owned by the employee (cascade on delete).
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
