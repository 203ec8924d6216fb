package domain

import "time"

// RequestType classifies a leave request.
type RequestType string

const (
	TypeLeave     RequestType = "LEAVE"
	TypeSickLeave RequestType = "SICK_LEAVE"
	TypeVacation  RequestType = "VACATION"
	TypeEmergency RequestType = "EMERGENCY"
	TypeOther     RequestType = "OTHER"
)

// RequestStatus is the lifecycle state of a leave request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// validDecisions defines the allowed state machine transitions. APPROVED and
// REJECTED are terminal: once decided, a request cannot be re-decided.
var validDecisions = map[RequestStatus][]RequestStatus{
	RequestPending: {RequestApproved, RequestRejected},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validDecisions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether t is one of the known request types.
func (t RequestType) Valid() bool {
	switch t {
	case TypeLeave, TypeSickLeave, TypeVacation, TypeEmergency, TypeOther:
		return true
	}
	return false
}

// LeaveRequest is an employee-submitted absence request awaiting an admin decision.
type LeaveRequest struct {
	ID          string        `json:"id"`
	EmployeeID  string        `json:"employee_id"`
	Type        RequestType   `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	Status      RequestStatus `json:"status"`
	ApprovedBy  string        `json:"approved_by,omitempty"`
	Comments    string        `json:"comments,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
