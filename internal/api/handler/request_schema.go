package handler

import (
	"time"

	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/ports"
)

type submitRequestRequest struct {
	Type        string `json:"type"        validate:"required,oneof=LEAVE SICK_LEAVE VACATION EMERGENCY OTHER"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	StartDate   string `json:"start_date"  validate:"required"`
	EndDate     string `json:"end_date"    validate:"required"`
}

type decideRequestRequest struct {
	Status   string `json:"status"   validate:"required,oneof=APPROVED REJECTED"`
	Comments string `json:"comments"`
}

// requestOwnerResponse is the employee projection joined onto admin list rows.
type requestOwnerResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type requestWithEmployeeResponse struct {
	*domain.LeaveRequest
	Employee requestOwnerResponse `json:"employee"`
}

func toRequestRow(r *ports.RequestWithEmployee) requestWithEmployeeResponse {
	return requestWithEmployeeResponse{
		LeaveRequest: r.Request,
		Employee: requestOwnerResponse{
			Name:       r.Employee.Name,
			Email:      r.Employee.Email,
			Department: r.Employee.Department,
		},
	}
}

// parseDate accepts both bare ISO days ("2024-01-10") and full RFC 3339
// timestamps; dashboard forms send the former.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
