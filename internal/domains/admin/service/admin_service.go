package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"book-catalog-backend/internal/domains/admin"
	"book-catalog-backend/pkg/cache"
	"book-catalog-backend/pkg/jwt"
)

const loginAttemptKeyPrefix = "login:attempts:"

// ThrottleConfig bounds failed-login counting
type ThrottleConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// adminService implements admin.Service
type adminService struct {
	repo     admin.Repository
	tokens   *jwt.Manager
	cache    cache.Cache
	throttle ThrottleConfig
}

func NewAdminService(repo admin.Repository, tokens *jwt.Manager, c cache.Cache, throttle ThrottleConfig) admin.Service {
	return &adminService{
		repo:     repo,
		tokens:   tokens,
		cache:    c,
		throttle: throttle,
	}
}

// Login verifies credentials and issues a session token
func (s *adminService) Login(ctx context.Context, req admin.LoginRequest, clientIP string) (*admin.LoginResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		// Malformed input gets the same generic response as a bad password
		return nil, admin.ErrInvalidCredentials
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	attemptKey := loginAttemptKeyPrefix + email + ":" + clientIP

	// 2. THROTTLE CHECK
	// Lock out before touching the credential store so a brute-forcer
	// learns nothing about the account during the window.
	if locked, err := s.isLockedOut(ctx, attemptKey); err == nil && locked {
		return nil, admin.ErrTooManyAttempts
	}

	// 3. FIND ADMIN BY EMAIL
	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == admin.ErrAdminNotFound {
			// Do not expose whether the email exists
			s.recordFailure(ctx, attemptKey)
			return nil, admin.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	// 4. VERIFY PASSWORD
	// bcrypt.CompareHashAndPassword is a constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, attemptKey)
		return nil, admin.ErrInvalidCredentials
	}

	// 5. GENERATE SESSION TOKEN (30-day expiry, no refresh)
	token, err := s.tokens.GenerateToken(a.ID.String(), a.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	// 6. CLEAR FAILURE COUNTER (fire-and-forget)
	go func() {
		_ = s.cache.Delete(context.Background(), attemptKey)
	}()

	return &admin.LoginResponse{
		ID:    a.ID,
		Email: a.Email,
		Token: token,
	}, nil
}

// isLockedOut reports whether the email+IP pair has exhausted its attempts
func (s *adminService) isLockedOut(ctx context.Context, key string) (bool, error) {
	var count int64
	found, err := s.cache.Get(ctx, key, &count)
	if err != nil {
		// Redis being down must not lock admins out
		return false, err
	}
	return found && count >= int64(s.throttle.MaxAttempts), nil
}

// recordFailure bumps the failure counter, starting the window on first miss
func (s *adminService) recordFailure(ctx context.Context, key string) {
	count, err := s.cache.Increment(ctx, key)
	if err != nil {
		return
	}
	if count == 1 {
		_ = s.cache.Expire(ctx, key, s.throttle.Window)
	}
}
