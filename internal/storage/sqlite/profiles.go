package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

// CreateProfile persists a new profile row for an identity.
func (s *SQLiteStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO profiles (id, full_name, avatar_url, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		profile.ID, profile.FullName, profile.AvatarURL,
		profile.CreatedAt.UnixNano(), profile.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by owner ID, or nil if none exists.
func (s *SQLiteStore) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	profile := &models.Profile{}
	var createdAt, updatedAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, full_name, avatar_url, created_at, updated_at FROM profiles WHERE id = ?", id,
	).Scan(&profile.ID, &profile.FullName, &profile.AvatarURL, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	profile.CreatedAt = time.Unix(0, createdAt)
	profile.UpdatedAt = time.Unix(0, updatedAt)
	return profile, nil
}

// UpdateProfile overwrites the profile's display fields for its owner.
func (s *SQLiteStore) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE profiles SET full_name = ?, avatar_url = ?, updated_at = ? WHERE id = ?",
		profile.FullName, profile.AvatarURL, profile.UpdatedAt.UnixNano(), profile.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("profile not found: %s", profile.ID)
	}
	return nil
}
