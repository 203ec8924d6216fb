package ports

import (
	"context"

	"github.com/worksync/attendance-system/internal/core/domain"
)

// SignupInput carries all data needed to register a new employee account.
type SignupInput struct {
	Name        string
	Username    string
	Email       string
	Password    string
	Role        string // defaults to "employee" when empty
	Department  string
	Photo       string
	Fingerprint string
}

// AuthService implements registration and login.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.Employee, error)
	Login(ctx context.Context, email, password string) (string, *domain.Employee, error)
}

// LoginLimiter throttles repeated login attempts per account (Redis-backed).
type LoginLimiter interface {
	// Allow records one attempt for the key and reports whether it is still
	// within the window budget.
	Allow(ctx context.Context, key string) (bool, error)
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, key string) error
}
