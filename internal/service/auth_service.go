package service

import (
	"context"
	"errors"
	"time"

	"pospenjualan/internal/config"
	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"
	"pospenjualan/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// SessionManager is the slice of the session store the auth service needs.
type SessionManager interface {
	Create(ctx context.Context, user *model.User) (*model.Session, error)
	Destroy(ctx context.Context, token string) error
}

type AuthService interface {
	// Login verifies credentials and opens a session. The failure message is
	// uniform for unknown user and wrong password.
	Login(ctx context.Context, req dto.LoginRequest, ip, userAgent string) (*model.Session, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    repository.UserRepository
	attempts repository.LoginAttemptRepository
	sessions SessionManager
	cfg      *config.Config
}

func NewAuthService(
	users repository.UserRepository,
	attempts repository.LoginAttemptRepository,
	sessions SessionManager,
	cfg *config.Config,
) AuthService {
	return &authService{users: users, attempts: attempts, sessions: sessions, cfg: cfg}
}

var (
	errInvalidCredentials = errors.New("invalid username or password")
	errLockedOut          = errors.New("too many failed login attempts, try again later")
)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest, ip, userAgent string) (*model.Session, error) {
	since := time.Now().Add(-time.Duration(s.cfg.LoginLockoutMinutes) * time.Minute)
	failures, err := s.attempts.CountRecentFailures(ctx, req.Username, ip, since)
	if err != nil {
		log.Error().Err(err).Msg("auth: lockout check")
		// Fall through — a broken attempt log must not lock everyone out.
	}
	if failures >= int64(s.cfg.LoginMaxAttempts) {
		return nil, errLockedOut
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		s.record(ctx, req.Username, ip, userAgent, false)
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.record(ctx, req.Username, ip, userAgent, false)
		return nil, errInvalidCredentials
	}

	s.record(ctx, req.Username, ip, userAgent, true)
	return s.sessions.Create(ctx, user)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// record is best-effort: a failed attempt insert is logged, not fatal.
func (s *authService) record(ctx context.Context, username, ip, ua string, success bool) {
	err := s.attempts.Record(ctx, &model.LoginAttempt{
		Username:  username,
		IP:        ip,
		Success:   success,
		UserAgent: ua,
	})
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("auth: record attempt")
	}
}
