package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/ports"
)

// --- employee repository stub ---

type stubEmployeeRepo struct {
	seq       int
	employees map[string]*domain.Employee
	statuses  []domain.PresenceStatus // status writes, in order
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	for _, existing := range r.employees {
		if existing.Username == e.Username || existing.Email == e.Email {
			return nil, domain.ErrEmployeeExists
		}
	}
	r.seq++
	clone := cloneEmployee(e)
	clone.ID = fmt.Sprintf("emp-%d", r.seq)
	r.employees[clone.ID] = clone
	return cloneEmployee(clone), nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, cloneEmployee(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, id string, update ports.EmployeeUpdate) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&e.Name, update.Name)
	apply(&e.Username, update.Username)
	apply(&e.Email, update.Email)
	apply(&e.Role, update.Role)
	apply(&e.Department, update.Department)
	apply(&e.Photo, update.Photo)
	apply(&e.Fingerprint, update.Fingerprint)
	apply(&e.PasswordHash, update.PasswordHash)
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) UpdateStatus(_ context.Context, id string, status domain.PresenceStatus) error {
	e, ok := r.employees[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	e.Status = status
	r.statuses = append(r.statuses, status)
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *stubEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.employees)), nil
}

// --- attendance repository stub ---

type stubAttendanceRepo struct {
	seq     int
	records []*domain.AttendanceRecord
	deleted []string // employee ids passed to DeleteByEmployee
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{}
}

func cloneRecord(rec *domain.AttendanceRecord) *domain.AttendanceRecord {
	if rec == nil {
		return nil
	}
	clone := *rec
	if rec.CheckOut != nil {
		out := *rec.CheckOut
		clone.CheckOut = &out
	}
	return &clone
}

func (r *stubAttendanceRepo) Create(_ context.Context, rec *domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	r.seq++
	clone := cloneRecord(rec)
	clone.ID = fmt.Sprintf("att-%d", r.seq)
	r.records = append(r.records, clone)
	return cloneRecord(clone), nil
}

func (r *stubAttendanceRepo) FindOpen(_ context.Context, employeeID string) (*domain.AttendanceRecord, error) {
	var open *domain.AttendanceRecord
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.CheckOut == nil {
			if open == nil || rec.CheckIn.After(open.CheckIn) {
				open = rec
			}
		}
	}
	if open == nil {
		return nil, domain.ErrNoActiveCheckIn
	}
	return cloneRecord(open), nil
}

func (r *stubAttendanceRepo) Close(_ context.Context, id string, checkOut time.Time) (*domain.AttendanceRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id && rec.CheckOut == nil {
			out := checkOut
			rec.CheckOut = &out
			return cloneRecord(rec), nil
		}
	}
	return nil, domain.ErrNoActiveCheckIn
}

func (r *stubAttendanceRepo) FindByDay(_ context.Context, employeeID string, day time.Time) (*domain.AttendanceRecord, error) {
	next := day.AddDate(0, 0, 1)
	var latest *domain.AttendanceRecord
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Date.Before(day) || !rec.Date.Before(next) {
			continue
		}
		if latest == nil || rec.CheckIn.After(latest.CheckIn) {
			latest = rec
		}
	}
	return cloneRecord(latest), nil
}

func (r *stubAttendanceRepo) ListRecent(_ context.Context, employeeID string, limit int) ([]*domain.AttendanceRecord, error) {
	var out []*domain.AttendanceRecord
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			out = append(out, cloneRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn.After(out[j].CheckIn) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubAttendanceRepo) CountCheckInsSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if !rec.CheckIn.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *stubAttendanceRepo) CountCheckInsBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if !rec.CheckIn.Before(from) && rec.CheckIn.Before(to) {
			n++
		}
	}
	return n, nil
}

func (r *stubAttendanceRepo) CountOpen(_ context.Context) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.CheckOut == nil {
			n++
		}
	}
	return n, nil
}

func (r *stubAttendanceRepo) DeleteByEmployee(_ context.Context, employeeID string) error {
	kept := r.records[:0]
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	r.deleted = append(r.deleted, employeeID)
	return nil
}

// --- request repository stub ---

type stubRequestRepo struct {
	seq      int
	requests []*domain.LeaveRequest
	deleted  []string
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{}
}

func cloneRequest(req *domain.LeaveRequest) *domain.LeaveRequest {
	if req == nil {
		return nil
	}
	clone := *req
	return &clone
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	r.seq++
	clone := cloneRequest(req)
	clone.ID = fmt.Sprintf("req-%d", r.seq)
	r.requests = append(r.requests, clone)
	return cloneRequest(clone), nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	for _, req := range r.requests {
		if req.ID == id {
			return cloneRequest(req), nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func (r *stubRequestRepo) ListByEmployee(_ context.Context, employeeID string) ([]*domain.LeaveRequest, error) {
	var out []*domain.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			out = append(out, cloneRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubRequestRepo) ListAll(_ context.Context) ([]*domain.LeaveRequest, error) {
	out := make([]*domain.LeaveRequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, cloneRequest(req))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubRequestRepo) Decide(_ context.Context, id string, d ports.RequestDecision) (*domain.LeaveRequest, error) {
	for _, req := range r.requests {
		if req.ID == id {
			if req.Status != domain.RequestPending {
				return nil, domain.ErrRequestFinalized
			}
			req.Status = d.Status
			req.ApprovedBy = d.ApprovedBy
			req.Comments = d.Comments
			return cloneRequest(req), nil
		}
	}
	return nil, domain.ErrRequestFinalized
}

func (r *stubRequestRepo) DeleteByEmployee(_ context.Context, employeeID string) error {
	kept := r.requests[:0]
	for _, req := range r.requests {
		if req.EmployeeID != employeeID {
			kept = append(kept, req)
		}
	}
	r.requests = kept
	r.deleted = append(r.deleted, employeeID)
	return nil
}

// --- login limiter stub ---

type stubLimiter struct {
	max      int
	attempts map[string]int
	resets   []string
}

func newStubLimiter(max int) *stubLimiter {
	return &stubLimiter{max: max, attempts: make(map[string]int)}
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.attempts[key]++
	return l.attempts[key] <= l.max, nil
}

func (l *stubLimiter) Reset(_ context.Context, key string) error {
	delete(l.attempts, key)
	l.resets = append(l.resets, key)
	return nil
}
