package profile

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Raghavendrawissen/splitapp-client/internal/auth"
	"github.com/Raghavendrawissen/splitapp-client/internal/models"
	"github.com/Raghavendrawissen/splitapp-client/internal/storage"
)

// Common errors
var (
	ErrProfileNotFound = errors.New("profile not found")
)

// Service handles profile business logic
type Service struct {
	store storage.Store
	auth  *auth.Service
}

// NewService creates a new profile service
func NewService(store storage.Store, authService *auth.Service) *Service {
	return &Service{store: store, auth: authService}
}

// Get returns the caller's own profile
func (s *Service) Get(ctx context.Context, userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Update writes the display name and avatar to the profile row and then
// mirrors the name onto the account record. The two writes are sequential
// and independent: a failed mirror write is logged and does not roll back
// the profile row, so the two names can diverge until the next update.
func (s *Service) Update(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.Profile, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if req.FullName != nil {
		profile.FullName = req.FullName
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if err := s.auth.UpdateUserName(ctx, userID, *req.FullName); err != nil {
			slog.Warn("account name update failed after profile update", "user_id", userID, "error", err)
		}
	}

	return profile, nil
}
