package profile

import (
	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

// UpdateProfileRequest represents the request to update the caller's profile
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID        string  `json:"id"`
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ToResponse converts a profile model to a response DTO
func ToResponse(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
