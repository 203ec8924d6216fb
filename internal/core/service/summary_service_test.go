package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/worksync/attendance-system/internal/core/domain"
)

func TestSummaryService_Summary(t *testing.T) {
	employees := newStubEmployeeRepo()
	for i := 0; i < 10; i++ {
		employees.employees[fmt.Sprintf("emp-%d", i)] = &domain.Employee{ID: fmt.Sprintf("emp-%d", i)}
	}

	records := newStubAttendanceRepo()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	addRecord := func(employeeID string, checkIn time.Time, open bool) {
		rec := &domain.AttendanceRecord{
			EmployeeID: employeeID,
			Date:       domain.DayStart(checkIn),
			CheckIn:    checkIn,
		}
		if !open {
			out := checkIn.Add(8 * time.Hour)
			rec.CheckOut = &out
		}
		records.records = append(records.records, rec)
	}

	// Today: three check-ins, two still open.
	addRecord("emp-0", now.Add(-3*time.Hour), true)
	addRecord("emp-1", now.Add(-2*time.Hour), true)
	addRecord("emp-2", now.Add(-4*time.Hour), false)
	// Earlier days inside the trend window.
	addRecord("emp-3", now.AddDate(0, 0, -1), false)
	addRecord("emp-4", now.AddDate(0, 0, -3), false)
	addRecord("emp-5", now.AddDate(0, 0, -3), false)
	// Outside the window: must not appear in the trend.
	addRecord("emp-6", now.AddDate(0, 0, -10), false)

	svc := NewSummaryService(employees, records)
	svc.now = func() time.Time { return now }

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if summary.TotalEmployees != 10 {
		t.Errorf("TotalEmployees = %d, want 10", summary.TotalEmployees)
	}
	if summary.OnDuty != 2 {
		t.Errorf("OnDuty = %d, want 2", summary.OnDuty)
	}
	if summary.TodaysCheckIns != 3 {
		t.Errorf("TodaysCheckIns = %d, want 3", summary.TodaysCheckIns)
	}

	if len(summary.CheckInsPerDay) != 7 {
		t.Fatalf("got %d trend entries, want 7", len(summary.CheckInsPerDay))
	}
	wantCounts := map[string]int64{
		"2025-03-08": 0,
		"2025-03-09": 0,
		"2025-03-10": 0,
		"2025-03-11": 2,
		"2025-03-12": 0,
		"2025-03-13": 1,
		"2025-03-14": 3,
	}
	for i, entry := range summary.CheckInsPerDay {
		want, ok := wantCounts[entry.Date]
		if !ok {
			t.Errorf("unexpected trend date %q", entry.Date)
			continue
		}
		if entry.Count != want {
			t.Errorf("trend[%d] %s = %d, want %d", i, entry.Date, entry.Count, want)
		}
	}
	if first, last := summary.CheckInsPerDay[0].Date, summary.CheckInsPerDay[6].Date; first != "2025-03-08" || last != "2025-03-14" {
		t.Errorf("trend spans %s..%s, want 2025-03-08..2025-03-14", first, last)
	}
}

func TestSummaryService_Empty(t *testing.T) {
	svc := NewSummaryService(newStubEmployeeRepo(), newStubAttendanceRepo())

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.TotalEmployees != 0 || summary.OnDuty != 0 || summary.TodaysCheckIns != 0 {
		t.Errorf("empty system summary = %+v, want zeros", summary)
	}
	if len(summary.CheckInsPerDay) != 7 {
		t.Errorf("got %d trend entries, want 7 even with no data", len(summary.CheckInsPerDay))
	}
}
