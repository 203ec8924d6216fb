package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// PresenceStatus is the denormalized clock state stored on the employee row.
// The attendance ledger (open record or not) is authoritative; this field is
// refreshed after every check event so directory reads stay cheap.
type PresenceStatus string

const (
	StatusCheckIn  PresenceStatus = "CHECK_IN"
	StatusCheckOut PresenceStatus = "CHECK_OUT"
)

// Employee is the root entity; attendance records and leave requests hang off it.
type Employee struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Role         string         `json:"role"`
	Department   string         `json:"department"`
	Photo        string         `json:"photo"`
	Fingerprint  string         `json:"fingerprint"`
	Status       PresenceStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// IsAdmin reports whether the role grants admin access. Role values arrive
// from stored records and old tokens in mixed case, so the comparison is
// case-insensitive.
func IsAdmin(role string) bool {
	return strings.EqualFold(role, RoleAdmin)
}
