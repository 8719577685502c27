package group

import "github.com/Raghavendrawissen/splitapp-client/internal/models"

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	ImageURL    *string           `json:"image_url,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
	Members     []*MemberResponse `json:"members,omitempty"`
}

// MemberResponse represents a member in a group response
type MemberResponse struct {
	UserID   string  `json:"user_id"`
	Role     string  `json:"role"`
	FullName *string `json:"full_name,omitempty"`
	JoinedAt string  `json:"joined_at"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func ToResponse(g *models.Group) *GroupResponse {
	resp := &GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		ImageURL:    g.ImageURL,
		CreatedAt:   g.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   g.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	for _, m := range g.Members {
		resp.Members = append(resp.Members, ToMemberResponse(m))
	}
	return resp
}

// ToMemberResponse converts a GroupMember model to a MemberResponse DTO
func ToMemberResponse(m *models.GroupMember) *MemberResponse {
	return &MemberResponse{
		UserID:   m.UserID,
		Role:     m.Role,
		FullName: m.FullName,
		JoinedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
