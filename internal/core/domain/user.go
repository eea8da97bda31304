package domain

import "time"

type User struct {
	ID    string
	Email string
}

type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
