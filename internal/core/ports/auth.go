package ports

import (
	"context"

	"schedshare/internal/core/domain"
)

type UserRecord struct {
	User         domain.User
	PasswordHash []byte
}

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User, passwordHash []byte) error
	FindUserByEmail(ctx context.Context, email string) (UserRecord, error)
	FindUserByID(ctx context.Context, id string) (domain.User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	FindSession(ctx context.Context, token string) (domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (domain.User, error)
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	CurrentUser(ctx context.Context, token string) (domain.User, error)
	SignOut(ctx context.Context, token string) error
}

// PreferenceStore is device-local key/value storage.
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}
