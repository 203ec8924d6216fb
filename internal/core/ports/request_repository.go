package ports

import (
	"context"

	"github.com/worksync/attendance-system/internal/core/domain"
)

// RequestDecision carries the admin's verdict on a pending request.
type RequestDecision struct {
	Status     domain.RequestStatus
	ApprovedBy string
	Comments   string
}

// RequestRepository defines persistence operations for leave requests.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.LeaveRequest) (*domain.LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	// ListByEmployee returns the employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]*domain.LeaveRequest, error)
	// ListAll returns every request, newest first.
	ListAll(ctx context.Context) ([]*domain.LeaveRequest, error)
	// Decide applies the verdict to the request with the given id.
	Decide(ctx context.Context, id string, d RequestDecision) (*domain.LeaveRequest, error)
	// DeleteByEmployee removes all requests owned by the employee (cascade on delete).
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
