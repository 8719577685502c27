package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

// CreateUser persists a new identity.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, full_name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Email, user.FullName, user.PasswordHash, user.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves an identity by email, or nil if none exists.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "SELECT id, email, full_name, password_hash, created_at FROM users WHERE email = ?", email)
}

// GetUserByID retrieves an identity by ID, or nil if none exists.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "SELECT id, email, full_name, password_hash, created_at FROM users WHERE id = ?", id)
}

func (s *SQLiteStore) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	var createdAt int64
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.CreatedAt = time.Unix(0, createdAt)
	return user, nil
}

// UpdateUserPassword replaces the stored credential hash.
func (s *SQLiteStore) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ? WHERE id = ?", passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}

// UpdateUserName updates the identity's display-name metadata.
func (s *SQLiteStore) UpdateUserName(ctx context.Context, id, fullName string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE users SET full_name = ? WHERE id = ?", fullName, id)
	if err != nil {
		return fmt.Errorf("failed to update user name: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}

// CreateResetToken persists a password reset token.
func (s *SQLiteStore) CreateResetToken(ctx context.Context, token *models.ResetToken) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO reset_tokens (token, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)",
		token.Token, token.UserID, token.ExpiresAt.UnixNano(), token.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	return nil
}

// GetResetToken retrieves a reset token, or nil if none exists.
func (s *SQLiteStore) GetResetToken(ctx context.Context, token string) (*models.ResetToken, error) {
	rt := &models.ResetToken{}
	var expiresAt, createdAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT token, user_id, expires_at, created_at FROM reset_tokens WHERE token = ?", token,
	).Scan(&rt.Token, &rt.UserID, &expiresAt, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}
	rt.ExpiresAt = time.Unix(0, expiresAt)
	rt.CreatedAt = time.Unix(0, createdAt)
	return rt, nil
}

// DeleteResetToken removes a reset token after use.
func (s *SQLiteStore) DeleteResetToken(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM reset_tokens WHERE token = ?", token); err != nil {
		return fmt.Errorf("failed to delete reset token: %w", err)
	}
	return nil
}
