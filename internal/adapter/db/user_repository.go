package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"schedshare/internal/core/domain"
	"schedshare/internal/core/ports"
)

const mysqlErrDuplicateEntry = 1062

type UserRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type userRow struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	PasswordHash []byte `db:"password_hash"`
}

type sessionRow struct {
	Token     string    `db:"token"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
}

var (
	_ ports.UserRepository    = (*UserRepository)(nil)
	_ ports.SessionRepository = (*UserRepository)(nil)
)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db, now: time.Now}
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User, passwordHash []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?);`,
		user.ID, user.Email, passwordHash, storeTime(r.now()),
	)
	if isUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (ports.UserRecord, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `SELECT id, email, password_hash FROM users WHERE email = ?;`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.UserRecord{}, domain.ErrUserNotFound
	}
	if err != nil {
		return ports.UserRecord{}, err
	}
	return ports.UserRecord{
		User:         domain.User{ID: row.ID, Email: row.Email},
		PasswordHash: row.PasswordHash,
	}, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `SELECT id, email, password_hash FROM users WHERE id = ?;`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{ID: row.ID, Email: row.Email}, nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?);`,
		session.Token, session.UserID, storeTime(session.ExpiresAt),
	)
	return err
}

func (r *UserRepository) FindSession(ctx context.Context, token string) (domain.Session, error) {
	var row sessionRow
	err := r.db.GetContext(ctx, &row, `SELECT token, user_id, expires_at FROM sessions WHERE token = ?;`, token)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{Token: row.Token, UserID: row.UserID, ExpiresAt: row.ExpiresAt.UTC()}, nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?;`, token)
	return err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateEntry
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
