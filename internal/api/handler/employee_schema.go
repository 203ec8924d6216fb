package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createEmployeeRequest struct {
	Name        string `json:"name"`
	Username    string `json:"username"    validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=6"`
	Role        string `json:"role"        validate:"required,oneof=admin employee"`
	Department  string `json:"department"  validate:"required"`
	Photo       string `json:"photo"       validate:"required"`
	Fingerprint string `json:"fingerprint" validate:"required"`
}

// updateEmployeeRequest carries the allow-listed mutable fields. Absent fields
// stay unchanged; at least one must be present.
type updateEmployeeRequest struct {
	Name        *string `json:"name"`
	Username    *string `json:"username"`
	Email       *string `json:"email"       validate:"omitempty,email"`
	Role        *string `json:"role"        validate:"omitempty,oneof=admin employee"`
	Department  *string `json:"department"`
	Photo       *string `json:"photo"`
	Fingerprint *string `json:"fingerprint"`
	Password    *string `json:"password"    validate:"omitempty,min=6"`
}

type deleteEmployeeResponse struct {
	OK bool `json:"ok"`
}
