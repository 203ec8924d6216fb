package ports

import (
	"context"
	"time"

	"github.com/worksync/attendance-system/internal/core/domain"
)

// CheckInResult is returned after a successful check-in.
type CheckInResult struct {
	Record      *domain.AttendanceRecord
	CheckInTime time.Time
}

// CheckOutResult is returned after a successful check-out.
type CheckOutResult struct {
	Record       *domain.AttendanceRecord
	CheckOutTime time.Time
}

// TodayReport describes the employee's attendance state for the current day.
// Record is nil when the employee has no attendance today.
type TodayReport struct {
	Record       *domain.AttendanceRecord
	IsCheckedIn  bool
	CheckInTime  *time.Time
	CheckOutTime *time.Time
}

// AttendanceService drives the per-employee check-in/check-out state machine.
type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID string) (*CheckInResult, error)
	CheckOut(ctx context.Context, employeeID string) (*CheckOutResult, error)
	Today(ctx context.Context, employeeID string) (*TodayReport, error)
}
