package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"schedshare/internal/core/domain"
	"schedshare/internal/core/ports"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, user domain.User, passwordHash []byte) error {
	return m.Called(ctx, user, passwordHash).Error(0)
}

func (m *userRepositoryMock) FindUserByEmail(ctx context.Context, email string) (ports.UserRecord, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(ports.UserRecord), args.Error(1)
}

func (m *userRepositoryMock) FindUserByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type sessionRepositoryMock struct {
	mock.Mock
}

func (m *sessionRepositoryMock) CreateSession(ctx context.Context, session domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *sessionRepositoryMock) FindSession(ctx context.Context, token string) (domain.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *sessionRepositoryMock) DeleteSession(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

var fixedNow = time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC)

func newAuthService(users *userRepositoryMock, sessions *sessionRepositoryMock) *AuthService {
	svc := NewAuthService(users, sessions, time.Hour)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestAuthService_SignUpHashesPassword(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.ID != "" && u.Email == "me@example.com"
	}), mock.MatchedBy(func(hash []byte) bool {
		return bcrypt.CompareHashAndPassword(hash, []byte("secret123")) == nil
	})).Return(nil).Once()

	user, err := newAuthService(users, new(sessionRepositoryMock)).SignUp(context.Background(), "  Me@Example.com ", "secret123")

	require.NoError(t, err)
	require.Equal(t, "me@example.com", user.Email)
	users.AssertExpectations(t)
}

func TestAuthService_SignUpRejectsBadInput(t *testing.T) {
	svc := newAuthService(new(userRepositoryMock), new(sessionRepositoryMock))

	_, err := svc.SignUp(context.Background(), "not-an-email", "secret123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.SignUp(context.Background(), "me@example.com", "123")
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestAuthService_SignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	record := ports.UserRecord{User: domain.User{ID: "u1", Email: "me@example.com"}, PasswordHash: hash}

	users := new(userRepositoryMock)
	users.On("FindUserByEmail", mock.Anything, "me@example.com").Return(record, nil)
	users.On("FindUserByEmail", mock.Anything, "ghost@example.com").Return(ports.UserRecord{}, domain.ErrUserNotFound)
	sessions := new(sessionRepositoryMock)
	sessions.On("CreateSession", mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.UserID == "u1" && s.Token != "" && s.ExpiresAt.Equal(fixedNow.Add(time.Hour))
	})).Return(nil).Once()
	svc := newAuthService(users, sessions)

	session, err := svc.SignIn(context.Background(), "me@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "u1", session.UserID)

	_, err = svc.SignIn(context.Background(), "me@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), "ghost@example.com", "secret123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	sessions.AssertExpectations(t)
}

func TestAuthService_CurrentUser(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("FindUserByID", mock.Anything, "u1").Return(domain.User{ID: "u1", Email: "me@example.com"}, nil)
	sessions := new(sessionRepositoryMock)
	sessions.On("FindSession", mock.Anything, "live").
		Return(domain.Session{Token: "live", UserID: "u1", ExpiresAt: fixedNow.Add(time.Minute)}, nil)
	sessions.On("FindSession", mock.Anything, "stale").
		Return(domain.Session{Token: "stale", UserID: "u1", ExpiresAt: fixedNow}, nil)
	sessions.On("FindSession", mock.Anything, "unknown").Return(domain.Session{}, domain.ErrSessionNotFound)
	sessions.On("FindSession", mock.Anything, "broken").Return(domain.Session{}, errors.New("db is down"))
	svc := newAuthService(users, sessions)
	ctx := context.Background()

	user, err := svc.CurrentUser(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)

	for _, token := range []string{"", "stale", "unknown", "broken"} {
		_, err := svc.CurrentUser(ctx, token)
		require.ErrorIs(t, err, domain.ErrUnauthenticated, token)
	}
}

func TestAuthService_SignOut(t *testing.T) {
	sessions := new(sessionRepositoryMock)
	sessions.On("DeleteSession", mock.Anything, "tok").Return(nil).Once()
	svc := newAuthService(new(userRepositoryMock), sessions)

	require.NoError(t, svc.SignOut(context.Background(), "tok"))
	require.NoError(t, svc.SignOut(context.Background(), ""))
	sessions.AssertExpectations(t)
}
