package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"schedshare/internal/core/domain"
	"schedshare/internal/core/ports"
)

const minPasswordLength = 6

var ErrWeakPassword = errors.New("password too short")

type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, ttl time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, ttl: ttl, now: time.Now}
}

func (s *AuthService) SignUp(ctx context.Context, email, password string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if len(password) < minPasswordLength {
		return domain.User{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{ID: uuid.NewString(), Email: email}
	if err := s.users.CreateUser(ctx, user, hash); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	record, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword(record.PasswordHash, []byte(password)); err != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	session := domain.Session{
		Token:     uuid.NewString(),
		UserID:    record.User.ID,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// CurrentUser collapses every lookup failure into domain.ErrUnauthenticated.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrUnauthenticated
	}

	session, err := s.sessions.FindSession(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			zap.L().Warn("failed to look up session", zap.Error(err))
		}
		return domain.User{}, domain.ErrUnauthenticated
	}
	if session.Expired(s.now()) {
		return domain.User{}, domain.ErrUnauthenticated
	}

	user, err := s.users.FindUserByID(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			zap.L().Warn("failed to load session user", zap.Error(err))
		}
		return domain.User{}, domain.ErrUnauthenticated
	}
	return user, nil
}

func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.AuthService = (*AuthService)(nil)
