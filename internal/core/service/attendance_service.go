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

// AttendanceService drives the per-employee OUT -> IN -> OUT state machine.
// The ledger is authoritative: a transition is gated on the presence or
// absence of an open record, never on the denormalized employee status.
type AttendanceService struct {
	records   ports.AttendanceRepository
	employees ports.EmployeeRepository
	now       func() time.Time
	log       zerolog.Logger
}

func NewAttendanceService(records ports.AttendanceRepository, employees ports.EmployeeRepository, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		records:   records,
		employees: employees,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log,
	}
}

// CheckIn opens a new attendance record. Fails with ErrAlreadyCheckedIn when
// an open record exists; the handler reports its check-in time to the caller.
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID string) (*ports.CheckInResult, error) {
	existing, err := s.records.FindOpen(ctx, employeeID)
	if err != nil && !errors.Is(err, domain.ErrNoActiveCheckIn) {
		return nil, fmt.Errorf("check in: %w", err)
	}
	if existing != nil {
		return &ports.CheckInResult{Record: existing, CheckInTime: existing.CheckIn},
			domain.ErrAlreadyCheckedIn
	}

	now := s.now()
	record, err := s.records.Create(ctx, &domain.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       domain.DayStart(now),
		CheckIn:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}

	// Second, non-transactional write: refresh the presence cache. The ledger
	// stays correct even if this write is lost.
	if err := s.employees.UpdateStatus(ctx, employeeID, domain.StatusCheckIn); err != nil {
		s.log.Warn().Err(err).Str("employee_id", employeeID).Msg("failed to refresh presence status")
	}

	s.log.Info().Str("employee_id", employeeID).Time("check_in", now).Msg("checked in")

	return &ports.CheckInResult{Record: record, CheckInTime: record.CheckIn}, nil
}

// CheckOut closes the employee's open record. Fails with ErrNoActiveCheckIn
// when the employee is not checked in; nothing is mutated in that case.
func (s *AttendanceService) CheckOut(ctx context.Context, employeeID string) (*ports.CheckOutResult, error) {
	open, err := s.records.FindOpen(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	closed, err := s.records.Close(ctx, open.ID, now)
	if err != nil {
		return nil, fmt.Errorf("check out: %w", err)
	}

	if err := s.employees.UpdateStatus(ctx, employeeID, domain.StatusCheckOut); err != nil {
		s.log.Warn().Err(err).Str("employee_id", employeeID).Msg("failed to refresh presence status")
	}

	s.log.Info().Str("employee_id", employeeID).Time("check_out", now).Msg("checked out")

	return &ports.CheckOutResult{Record: closed, CheckOutTime: now}, nil
}

// Today reports the employee's attendance state for the current day. An open
// record always wins, even one carried over from a previous day; otherwise
// the latest record dated today is reported, or an empty report if none.
func (s *AttendanceService) Today(ctx context.Context, employeeID string) (*ports.TodayReport, error) {
	open, err := s.records.FindOpen(ctx, employeeID)
	if err != nil && !errors.Is(err, domain.ErrNoActiveCheckIn) {
		return nil, fmt.Errorf("today: %w", err)
	}
	if open != nil {
		return &ports.TodayReport{
			Record:      open,
			IsCheckedIn: true,
			CheckInTime: &open.CheckIn,
		}, nil
	}

	record, err := s.records.FindByDay(ctx, employeeID, domain.DayStart(s.now()))
	if err != nil {
		return nil, fmt.Errorf("today: %w", err)
	}

	report := &ports.TodayReport{Record: record}
	if record != nil {
		report.CheckInTime = &record.CheckIn
		report.CheckOutTime = record.CheckOut
	}
	return report, nil
}
