package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/ports"
)

// RequestService drives the PENDING -> APPROVED | REJECTED workflow.
type RequestService struct {
	repo      ports.RequestRepository
	employees ports.EmployeeRepository
	log       zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, employees ports.EmployeeRepository, log zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, employees: employees, log: log}
}

// Submit creates a new request in the PENDING state. The date range must be
// strictly increasing: start before end.
func (s *RequestService) Submit(ctx context.Context, input ports.SubmitRequestInput) (*domain.LeaveRequest, error) {
	if input.EmployeeID == "" || input.Title == "" || input.Description == "" ||
		input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, domain.ErrMissingFields
	}
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if !input.StartDate.Before(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	created, err := s.repo.Create(ctx, &domain.LeaveRequest{
		EmployeeID:  input.EmployeeID,
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      domain.RequestPending,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("submit request: %w", err)
	}

	s.log.Info().Str("request_id", created.ID).Str("employee_id", created.EmployeeID).
		Str("type", string(created.Type)).Msg("leave request submitted")
	return created, nil
}

// ListMine returns the employee's own requests, newest first.
func (s *RequestService) ListMine(ctx context.Context, employeeID string) ([]*domain.LeaveRequest, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}

// ListAll returns every request joined with its owner's directory entry.
// Admin only.
func (s *RequestService) ListAll(ctx context.Context, actorRole string) ([]*ports.RequestWithEmployee, error) {
	if !domain.IsAdmin(actorRole) {
		return nil, domain.ErrForbidden
	}

	requests, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	rows := make([]*ports.RequestWithEmployee, 0, len(requests))
	for _, r := range requests {
		row := &ports.RequestWithEmployee{Request: r}
		owner, err := s.employees.FindByID(ctx, r.EmployeeID)
		if err == nil {
			row.Employee = ports.RequestOwner{
				Name:       owner.Name,
				Email:      owner.Email,
				Department: owner.Department,
			}
		} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, fmt.Errorf("list requests: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Decide applies an admin verdict. Only PENDING requests may be decided; the
// target status must be APPROVED or REJECTED. Decided requests are terminal.
func (s *RequestService) Decide(ctx context.Context, input ports.DecideRequestInput) (*domain.LeaveRequest, error) {
	if !domain.IsAdmin(input.ActorRole) {
		return nil, domain.ErrForbidden
	}
	if input.Status != domain.RequestApproved && input.Status != domain.RequestRejected {
		return nil, domain.ErrInvalidStatus
	}

	request, err := s.repo.FindByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if !request.Status.CanTransitionTo(input.Status) {
		return nil, domain.ErrRequestFinalized
	}

	decided, err := s.repo.Decide(ctx, input.RequestID, ports.RequestDecision{
		Status:     input.Status,
		ApprovedBy: input.ActorID,
		Comments:   input.Comments,
	})
	if err != nil {
		return nil, fmt.Errorf("decide request: %w", err)
	}

	s.log.Info().Str("request_id", decided.ID).Str("status", string(decided.Status)).
		Str("approved_by", input.ActorID).Msg("leave request decided")
	return decided, nil
}
