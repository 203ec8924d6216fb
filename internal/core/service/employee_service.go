package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/ports"
)

const recentAttendanceLimit = 20

// EmployeeService implements directory CRUD. Deleting an employee cascades to
// the attendance records and leave requests it owns.
type EmployeeService struct {
	repo     ports.EmployeeRepository
	records  ports.AttendanceRepository
	requests ports.RequestRepository
	log      zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, records ports.AttendanceRepository, requests ports.RequestRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, records: records, requests: requests, log: log}
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" || input.Role == "" ||
		input.Department == "" || input.Photo == "" || input.Fingerprint == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Employee{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Department:   input.Department,
		Photo:        input.Photo,
		Fingerprint:  input.Fingerprint,
		Status:       domain.StatusCheckOut,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("employee_id", created.ID).Str("username", created.Username).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	update := ports.EmployeeUpdate{
		Name:        input.Name,
		Username:    input.Username,
		Email:       input.Email,
		Role:        input.Role,
		Department:  input.Department,
		Photo:       input.Photo,
		Fingerprint: input.Fingerprint,
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	if update.Empty() {
		return nil, domain.ErrMissingFields
	}

	return s.repo.Update(ctx, id, update)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Cascade. Orphan cleanup failures are logged, not surfaced: the employee
	// row is already gone and the delete must read as successful.
	if err := s.records.DeleteByEmployee(ctx, id); err != nil {
		s.log.Error().Err(err).Str("employee_id", id).Msg("failed to cascade attendance delete")
	}
	if err := s.requests.DeleteByEmployee(ctx, id); err != nil {
		s.log.Error().Err(err).Str("employee_id", id).Msg("failed to cascade request delete")
	}

	s.log.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

// RecentAttendance returns the employee's last check-in records, newest first.
func (s *EmployeeService) RecentAttendance(ctx context.Context, id string) ([]*domain.AttendanceRecord, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("recent attendance: %w", err)
	}
	return s.records.ListRecent(ctx, id, recentAttendanceLimit)
}
