package ports

import (
	"context"

	"github.com/worksync/attendance-system/internal/core/domain"
)

// EmployeeUpdate carries the allow-listed mutable fields of an employee.
// Nil pointers mean "leave unchanged". PasswordHash, when set, is already hashed.
type EmployeeUpdate struct {
	Name         *string
	Username     *string
	Email        *string
	Role         *string
	Department   *string
	Photo        *string
	Fingerprint  *string
	PasswordHash *string
}

// Empty reports whether the update carries no fields at all.
func (u EmployeeUpdate) Empty() bool {
	return u.Name == nil && u.Username == nil && u.Email == nil && u.Role == nil &&
		u.Department == nil && u.Photo == nil && u.Fingerprint == nil && u.PasswordHash == nil
}

// EmployeeRepository defines persistence operations for the employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, id string, update EmployeeUpdate) (*domain.Employee, error)
	// UpdateStatus refreshes the denormalized presence field after a check event.
	UpdateStatus(ctx context.Context, id string, status domain.PresenceStatus) error
	Delete(ctx context.Context, id string) error
	// Count returns the total number of employees.
	Count(ctx context.Context) (int64, error)
}
