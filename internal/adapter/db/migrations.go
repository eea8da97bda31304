package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"schedshare/internal/config"
)

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash BLOB NOT NULL,
  created_at DATETIME NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS sessions (
  token TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  expires_at DATETIME NOT NULL
);`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);`,
	`CREATE TABLE IF NOT EXISTS tasks (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  start_time DATETIME NOT NULL,
  end_time DATETIME,
  status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'in_progress', 'completed')),
  created_by TEXT NOT NULL,
  created_at DATETIME NOT NULL
);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_start_time ON tasks(start_time);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_created_by ON tasks(created_by);`,
}

var mysqlMigrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
  id CHAR(36) NOT NULL PRIMARY KEY,
  email VARCHAR(255) NOT NULL UNIQUE,
  password_hash VARBINARY(255) NOT NULL,
  created_at DATETIME NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS sessions (
  token CHAR(36) NOT NULL PRIMARY KEY,
  user_id CHAR(36) NOT NULL,
  expires_at DATETIME NOT NULL,
  INDEX idx_sessions_user (user_id),
  CONSTRAINT fk_sessions_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);`,
	`CREATE TABLE IF NOT EXISTS tasks (
  id CHAR(36) NOT NULL PRIMARY KEY,
  title VARCHAR(255) NOT NULL,
  description TEXT NULL,
  start_time DATETIME NOT NULL,
  end_time DATETIME NULL,
  status ENUM('pending', 'in_progress', 'completed') NOT NULL DEFAULT 'pending',
  created_by CHAR(36) NOT NULL,
  created_at DATETIME NOT NULL,
  INDEX idx_tasks_start_time (start_time),
  INDEX idx_tasks_created_by (created_by)
);`,
}

// Migrate creates the schema for driver. Every statement is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	stmts := sqliteMigrations
	if driver == config.DriverMySQL {
		stmts = mysqlMigrations
	}

	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	zap.L().Debug("schema migrated", zap.String("driver", driver), zap.Int("statements", len(stmts)))
	return nil
}
