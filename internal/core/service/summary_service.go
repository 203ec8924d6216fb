package service

import (
	"context"
	"fmt"
	"time"

	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/ports"
)

const trendDays = 7

// SummaryService computes the admin dashboard aggregates. OnDuty is derived
// from open ledger records rather than the denormalized employee status, so a
// lost presence write cannot skew the dashboard.
type SummaryService struct {
	employees ports.EmployeeRepository
	records   ports.AttendanceRepository
	now       func() time.Time
}

func NewSummaryService(employees ports.EmployeeRepository, records ports.AttendanceRepository) *SummaryService {
	return &SummaryService{
		employees: employees,
		records:   records,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *SummaryService) Summary(ctx context.Context) (*ports.Summary, error) {
	total, err := s.employees.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	onDuty, err := s.records.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	today := domain.DayStart(s.now())
	todays, err := s.records.CountCheckInsSince(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	trend := make([]ports.DayCount, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		count, err := s.records.CountCheckInsBetween(ctx, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, fmt.Errorf("summary: %w", err)
		}
		trend = append(trend, ports.DayCount{
			Date:  day.Format("2006-01-02"),
			Count: count,
		})
	}

	return &ports.Summary{
		TotalEmployees: total,
		OnDuty:         onDuty,
		TodaysCheckIns: todays,
		CheckInsPerDay: trend,
	}, nil
}
