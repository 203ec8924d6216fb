package domain

import "time"

// AttendanceRecord is one check-in event. CheckOut is nil while the employee
// is still on duty; such a record is called "open". An employee has at most
// one open record at any time.
type AttendanceRecord struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Date       time.Time  `json:"date"` // calendar day, time-truncated UTC
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
}

// Open reports whether the record has no check-out yet.
func (r *AttendanceRecord) Open() bool {
	return r.CheckOut == nil
}

// DayStart truncates t to the start of its UTC calendar day.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
