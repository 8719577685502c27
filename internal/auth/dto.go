package auth

import "github.com/Raghavendrawissen/splitapp-client/internal/models"

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest represents the request to sign in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest represents the request to email a reset link
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ExchangeTokenRequest represents the request to redeem a reset token
type ExchangeTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// UpdatePasswordRequest represents the request to set a new password
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse represents an identity in API responses
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// SessionResponse represents a successful authentication
type SessionResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ToResponse converts a Session to a SessionResponse DTO
func (s *Session) ToResponse() *SessionResponse {
	return &SessionResponse{
		Token: s.Token,
		User:  userToResponse(s.User),
	}
}

func userToResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
