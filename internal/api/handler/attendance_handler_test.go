package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/ports"
)

type stubAttendanceService struct {
	checkInFn  func(ctx context.Context, employeeID string) (*ports.CheckInResult, error)
	checkOutFn func(ctx context.Context, employeeID string) (*ports.CheckOutResult, error)
	todayFn    func(ctx context.Context, employeeID string) (*ports.TodayReport, error)
}

func (s *stubAttendanceService) CheckIn(ctx context.Context, employeeID string) (*ports.CheckInResult, error) {
	return s.checkInFn(ctx, employeeID)
}

func (s *stubAttendanceService) CheckOut(ctx context.Context, employeeID string) (*ports.CheckOutResult, error) {
	return s.checkOutFn(ctx, employeeID)
}

func (s *stubAttendanceService) Today(ctx context.Context, employeeID string) (*ports.TodayReport, error) {
	return s.todayFn(ctx, employeeID)
}

// newAuthedContext builds a context carrying the claims the Auth middleware
// would have injected.
func newAuthedContext(e *echo.Echo, method, path, employeeID, role string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if employeeID != "" {
		c.Set("employee_id", employeeID)
	}
	if role != "" {
		c.Set("role", role)
	}
	return c, rec
}

func TestAttendanceHandler_CheckIn_Success(t *testing.T) {
	e := echo.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	stub := &stubAttendanceService{
		checkInFn: func(ctx context.Context, employeeID string) (*ports.CheckInResult, error) {
			if employeeID != "emp-1" {
				t.Fatalf("unexpected employee id %q", employeeID)
			}
			return &ports.CheckInResult{
				Record:      &domain.AttendanceRecord{ID: "att-1", EmployeeID: employeeID, CheckIn: now},
				CheckInTime: now,
			}, nil
		},
	}
	handler := NewAttendanceHandler(stub)

	c, rec := newAuthedContext(e, http.MethodPost, "/attendance/checkin", "emp-1", "employee")
	if err := handler.CheckIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["check_in_time"] != now.Format(time.RFC3339) {
		t.Fatalf("check_in_time = %v", resp["check_in_time"])
	}
	if _, ok := resp["attendance"].(map[string]any); !ok {
		t.Fatalf("expected attendance record in response: %+v", resp)
	}
}

func TestAttendanceHandler_CheckIn_Conflict(t *testing.T) {
	e := echo.New()
	existing := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	stub := &stubAttendanceService{
		checkInFn: func(context.Context, string) (*ports.CheckInResult, error) {
			return &ports.CheckInResult{CheckInTime: existing}, domain.ErrAlreadyCheckedIn
		},
	}
	handler := NewAttendanceHandler(stub)

	c, rec := newAuthedContext(e, http.MethodPost, "/attendance/checkin", "emp-1", "employee")
	if err := handler.CheckIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// The conflict body reports when the blocking record was opened.
	if resp["check_in_time"] != existing.Format(time.RFC3339) {
		t.Fatalf("check_in_time = %v, want %v", resp["check_in_time"], existing.Format(time.RFC3339))
	}
	if resp["error"] != "already checked in" {
		t.Fatalf("error = %v", resp["error"])
	}
}

func TestAttendanceHandler_CheckIn_Unauthenticated(t *testing.T) {
	e := echo.New()
	stub := &stubAttendanceService{
		checkInFn: func(context.Context, string) (*ports.CheckInResult, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewAttendanceHandler(stub)

	c, _ := newAuthedContext(e, http.MethodPost, "/attendance/checkin", "", "")
	if code := httpErrorCode(t, handler.CheckIn(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAttendanceHandler_CheckOut_Success(t *testing.T) {
	e := echo.New()
	out := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	stub := &stubAttendanceService{
		checkOutFn: func(ctx context.Context, employeeID string) (*ports.CheckOutResult, error) {
			return &ports.CheckOutResult{
				Record:       &domain.AttendanceRecord{ID: "att-1", EmployeeID: employeeID, CheckOut: &out},
				CheckOutTime: out,
			}, nil
		},
	}
	handler := NewAttendanceHandler(stub)

	c, rec := newAuthedContext(e, http.MethodPost, "/attendance/checkout", "emp-1", "employee")
	if err := handler.CheckOut(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAttendanceHandler_CheckOut_NotCheckedIn(t *testing.T) {
	e := echo.New()
	stub := &stubAttendanceService{
		checkOutFn: func(context.Context, string) (*ports.CheckOutResult, error) {
			return nil, domain.ErrNoActiveCheckIn
		},
	}
	handler := NewAttendanceHandler(stub)

	c, _ := newAuthedContext(e, http.MethodPost, "/attendance/checkout", "emp-1", "employee")
	if err := handler.CheckOut(c); !errors.Is(err, domain.ErrNoActiveCheckIn) {
		t.Fatalf("expected ErrNoActiveCheckIn, got %v", err)
	}
}

func TestAttendanceHandler_Today(t *testing.T) {
	e := echo.New()
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	stub := &stubAttendanceService{
		todayFn: func(ctx context.Context, employeeID string) (*ports.TodayReport, error) {
			return &ports.TodayReport{
				Record:      &domain.AttendanceRecord{ID: "att-1", EmployeeID: employeeID, CheckIn: checkIn},
				IsCheckedIn: true,
				CheckInTime: &checkIn,
			}, nil
		},
	}
	handler := NewAttendanceHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/attendance/today", "emp-1", "employee")
	if err := handler.Today(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["is_checked_in"] != true {
		t.Fatalf("is_checked_in = %v, want true", resp["is_checked_in"])
	}
	if resp["check_out_time"] != nil {
		t.Fatalf("check_out_time = %v, want null", resp["check_out_time"])
	}
}

func TestAttendanceHandler_Today_Empty(t *testing.T) {
	e := echo.New()
	stub := &stubAttendanceService{
		todayFn: func(context.Context, string) (*ports.TodayReport, error) {
			return &ports.TodayReport{}, nil
		},
	}
	handler := NewAttendanceHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/attendance/today", "emp-1", "employee")
	if err := handler.Today(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["attendance"] != nil || resp["is_checked_in"] != false {
		t.Fatalf("unexpected empty-day payload: %+v", resp)
	}
}
