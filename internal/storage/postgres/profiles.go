package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

// CreateProfile inserts a new profile row for an identity.
func (s *PostgresStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, full_name, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		profile.ID, profile.FullName, profile.AvatarURL,
		profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by its owner's ID.
func (s *PostgresStore) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	query := `
		SELECT id, full_name, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	profile := &models.Profile{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile overwrites the profile's display fields for its owner.
func (s *PostgresStore) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET full_name = $2, avatar_url = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		profile.ID, profile.FullName, profile.AvatarURL, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}
