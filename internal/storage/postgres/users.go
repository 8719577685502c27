package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

// CreateUser inserts a new identity into the database.
func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, full_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Email, user.FullName, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves an identity by email.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	return s.getUser(ctx, query, email)
}

// GetUserByID retrieves an identity by ID.
func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	return s.getUser(ctx, query, id)
}

func (s *PostgresStore) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateUserPassword replaces the stored credential hash.
func (s *PostgresStore) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// UpdateUserName updates the identity's display-name metadata.
func (s *PostgresStore) UpdateUserName(ctx context.Context, id, fullName string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET full_name = $2 WHERE id = $1`, id, fullName)
	if err != nil {
		return fmt.Errorf("failed to update user name: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// CreateResetToken inserts a password reset token.
func (s *PostgresStore) CreateResetToken(ctx context.Context, token *models.ResetToken) error {
	query := `
		INSERT INTO reset_tokens (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query,
		token.Token, token.UserID, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	return nil
}

// GetResetToken retrieves a reset token.
func (s *PostgresStore) GetResetToken(ctx context.Context, token string) (*models.ResetToken, error) {
	query := `
		SELECT token, user_id, expires_at, created_at
		FROM reset_tokens
		WHERE token = $1
	`
	rt := &models.ResetToken{}
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&rt.Token, &rt.UserID, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}
	return rt, nil
}

// DeleteResetToken removes a reset token after use.
func (s *PostgresStore) DeleteResetToken(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM reset_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete reset token: %w", err)
	}
	return nil
}
