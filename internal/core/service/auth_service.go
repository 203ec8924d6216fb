package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/ports"
)

// AuthService implements signup and login.
type AuthService struct {
	repo      ports.EmployeeRepository
	limiter   ports.LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.EmployeeRepository, limiter ports.LoginLimiter, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, limiter: limiter, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Signup registers a new employee account and returns a session token with the
// created profile. New accounts start in the CHECK_OUT presence state.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.Employee, error) {
	if input.Name == "" || input.Username == "" || input.Email == "" || input.Password == "" ||
		input.Department == "" || input.Photo == "" || input.Fingerprint == "" {
		return "", nil, domain.ErrMissingFields
	}

	role := input.Role
	if role == "" {
		role = domain.RoleEmployee
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	employee := &domain.Employee{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Department:   input.Department,
		Photo:        input.Photo,
		Fingerprint:  input.Fingerprint,
		Status:       domain.StatusCheckOut,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("employee_id", created.ID).Str("email", created.Email).Msg("employee signed up")
	return token, created, nil
}

// Login verifies credentials and returns a session token with the profile.
// Attempts are throttled per email; unknown accounts and wrong passwords both
// report ErrInvalidCredentials so the response does not reveal which failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Employee, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	allowed, err := s.limiter.Allow(ctx, email)
	if err != nil {
		// A limiter outage must not lock everyone out.
		s.log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
	} else if !allowed {
		return "", nil, domain.ErrTooManyAttempts
	}

	employee, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if resetErr := s.limiter.Reset(ctx, email); resetErr != nil {
		s.log.Warn().Err(resetErr).Msg("failed to reset login attempt counter")
	}

	token, err := s.generateToken(employee)
	if err != nil {
		return "", nil, err
	}

	return token, employee, nil
}

func (s *AuthService) generateToken(e *domain.Employee) (string, error) {
	claims := jwt.MapClaims{
		"employee_id": e.ID,
		"email":       e.Email,
		"role":        e.Role,
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
