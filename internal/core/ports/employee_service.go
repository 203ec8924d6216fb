package ports

import (
	"context"

	"github.com/worksync/attendance-system/internal/core/domain"
)

// CreateEmployeeInput carries all data for the admin create operation.
// All fields are required except Name.
type CreateEmployeeInput struct {
	Name        string
	Username    string
	Email       string
	Password    string
	Role        string
	Department  string
	Photo       string
	Fingerprint string
}

// UpdateEmployeeInput mirrors EmployeeUpdate but carries the plaintext
// password; the service hashes it before persistence.
type UpdateEmployeeInput struct {
	Name        *string
	Username    *string
	Email       *string
	Role        *string
	Department  *string
	Photo       *string
	Fingerprint *string
	Password    *string
}

// EmployeeService defines use-case operations for the employee directory.
type EmployeeService interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
	RecentAttendance(ctx context.Context, id string) ([]*domain.AttendanceRecord, error)
}
