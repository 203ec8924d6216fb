package ports

import (
	"context"
	"time"

	"github.com/worksync/attendance-system/internal/core/domain"
)

// SubmitRequestInput carries an employee's leave request submission.
type SubmitRequestInput struct {
	EmployeeID  string
	Type        domain.RequestType
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// DecideRequestInput carries an admin decision on a pending request.
type DecideRequestInput struct {
	ActorRole string
	ActorID   string
	RequestID string
	Status    domain.RequestStatus
	Comments  string
}

// RequestOwner is the employee projection joined onto admin list rows.
type RequestOwner struct {
	Name       string
	Email      string
	Department string
}

// RequestWithEmployee is an admin list row: the request plus its owner.
type RequestWithEmployee struct {
	Request  *domain.LeaveRequest
	Employee RequestOwner
}

// RequestService drives the leave request approval workflow.
type RequestService interface {
	Submit(ctx context.Context, input SubmitRequestInput) (*domain.LeaveRequest, error)
	ListMine(ctx context.Context, employeeID string) ([]*domain.LeaveRequest, error)
	ListAll(ctx context.Context, actorRole string) ([]*RequestWithEmployee, error)
	Decide(ctx context.Context, input DecideRequestInput) (*domain.LeaveRequest, error)
}
